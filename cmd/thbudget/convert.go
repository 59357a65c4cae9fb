package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"thbudget"
	"thbudget/format"
	"thbudget/model"
	"thbudget/reader"
	"thbudget/text"
)

// Banner headings that open and close the budget detail section. The
// headings differ between document editions, so every known variant is
// checked.
var startPageBanners = []string{
	"7. รายละเอียดงบประมาณจำแนกตามแผนงาน และ ผลผลิต/โครงการ",
	"1. รายละเอียดงบประมาณจำแนกตามแผนงาน และ ผลผลิต/โครงการ",
	"รายละเอียดงบประมาณจำแนกตามงบรายจ่าย",
}

var endPageBanners = []string{
	"8. รายงานสถานะและแผนการใช้จ่ายเงินนอกงบประมาณ",
	"8. รายละเอียดงบประมาณจำแนกตามหมวดรายจ่าย",
}

var (
	convertOut     string
	convertWorkers int
	convertForce   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file-or-directory>",
	Short: "Convert budget documents to budget tree JSON files",
	Long: `Convert reads one budget document, or every .pdf and .xlsx document
under a directory, extracts the budget tree from each and writes it as
<document-name>.json into the output directory.

Documents whose output file already exists are skipped unless --force is
given. A document that fails to convert is reported and does not stop the
remaining documents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := collectDocuments(args[0])
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no budget documents under %s", args[0])
		}
		if err := os.MkdirAll(convertOut, 0o755); err != nil {
			return err
		}

		var converted, failed atomic.Int64
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(convertWorkers)
		for _, file := range files {
			file := file
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := convertDocument(file, convertOut, convertForce); err != nil {
					failed.Add(1)
					log.WithError(err).WithField("file", file).Warn("conversion failed")
					return nil
				}
				converted.Add(1)
				log.WithField("file", file).Info("converted")
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if failed.Load() > 0 {
			log.Warnf("converted %d of %d documents", converted.Load(), len(files))
		}
		if converted.Load() == 0 {
			return fmt.Errorf("no documents converted")
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(
		&convertOut, "out", "o", "output", "directory for the extracted tree JSON files",
	)
	convertCmd.Flags().IntVarP(
		&convertWorkers, "workers", "w", runtime.NumCPU(), "number of documents converted in parallel",
	)
	convertCmd.Flags().BoolVarP(
		&convertForce, "force", "f", false, "reconvert documents whose output already exists",
	)
}

// collectDocuments lists the budget documents named by path, walking it
// recursively when it is a directory. Results are sorted for a stable
// processing order.
func collectDocuments(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isBudgetDocument(d.Name()) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// isBudgetDocument reports whether name looks like a convertible document.
// Office lock files ("~$...") are excluded.
func isBudgetDocument(name string) bool {
	if strings.HasPrefix(name, "~$") {
		return false
	}
	return format.Detect(name) != format.Unknown
}

func convertDocument(path, outDir string, force bool) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, name+".json")
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			log.WithField("file", path).Debug("already converted, skipping")
			return nil
		}
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	start, end, err := contentRange(doc)
	if err != nil {
		return err
	}

	extraction := thbudget.FromDocument(doc).PageRange(start, end)
	entries, err := extraction.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no budget entries in pages [%d, %d)", start, end)
	}

	root, err := extraction.Tree()
	if err != nil {
		return err
	}
	data, err := model.MarshalTreeIndent(root)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

func readDocument(path string) (*text.Document, error) {
	if format.Detect(path) == format.XLSX {
		return reader.ReadWorkbook(path, filepath.Base(path))
	}
	return reader.NewPDF(reader.DefaultConfig()).ReadDocument(path, filepath.Base(path))
}

// contentRange locates the budget detail section. The section opens at the
// first page carrying a start banner and closes just before the last page
// carrying an end banner; without an end banner it runs to the last page.
func contentRange(doc *text.Document) (start, end int, err error) {
	start, end = -1, len(doc.Pages)
	for i, page := range doc.Pages {
		pageText := page.String()
		if start < 0 && matchesAnyBanner(pageText, startPageBanners) {
			start = i
		}
		if matchesAnyBanner(pageText, endPageBanners) {
			end = i
		}
	}
	if start < 0 {
		return 0, 0, fmt.Errorf("cannot find the budget detail start page")
	}
	return start, end, nil
}

func matchesAnyBanner(pageText string, banners []string) bool {
	for _, banner := range banners {
		if reader.ContainsNormalized(pageText, banner) {
			return true
		}
	}
	return false
}
