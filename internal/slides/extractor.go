package slides

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	presentationPath = "ppt/presentation.xml"
	presentationRels = "ppt/_rels/presentation.xml.rels"
	slideRelType     = "/relationships/slide"
)

type implExtractor struct{}

func (e *implExtractor) Extract(r io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pptx: %w", err)
	}
	return extract(zr)
}

func (e *implExtractor) ExtractFile(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open pptx: %w", err)
	}
	defer zr.Close()
	return extract(&zr.Reader)
}

func extract(zr *zip.Reader) (string, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	slidePaths, err := slideOrder(files)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, p := range slidePaths {
		f, ok := files[p]
		if !ok {
			return "", fmt.Errorf("slide %d: missing part %s", i+1, p)
		}
		if err := appendSlideText(&sb, f); err != nil {
			return "", fmt.Errorf("slide %d: %w", i+1, err)
		}
	}

	return sb.String(), nil
}

// slideOrder resolves the slide parts in presentation order.
func slideOrder(files map[string]*zip.File) ([]string, error) {
	var pres presentation
	if err := decodePart(files, presentationPath, &pres); err != nil {
		return nil, err
	}

	var rels relationships
	if err := decodePart(files, presentationRels, &rels); err != nil {
		return nil, err
	}

	targets := make(map[string]string, len(rels.Items))
	for _, rel := range rels.Items {
		if strings.HasSuffix(rel.Type, slideRelType) {
			targets[rel.ID] = rel.Target
		}
	}

	paths := make([]string, 0, len(pres.SlideIDs))
	for _, id := range pres.SlideIDs {
		target, ok := targets[id.RID]
		if !ok {
			return nil, fmt.Errorf("slide relationship %q not found", id.RID)
		}
		paths = append(paths, resolveTarget(target))
	}

	return paths, nil
}

// resolveTarget turns a relationship target relative to ppt/ into a zip path.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join("ppt", target)
}

func decodePart(files map[string]*zip.File, name string, v interface{}) error {
	f, ok := files[name]
	if !ok {
		return fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	if err := xml.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// appendSlideText walks the direct children of p:spTree in document order and
// writes the text of every autoshape followed by a newline.
func appendSlideText(sb *strings.Builder, f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	depth := 0
	treeDepth := -1

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.Name, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if treeDepth >= 0 && depth == treeDepth {
				if t.Name.Local == "sp" {
					var shape autoShape
					if err := dec.DecodeElement(&shape, &t); err != nil {
						return fmt.Errorf("parse shape: %w", err)
					}
					sb.WriteString(shape.text())
					sb.WriteByte('\n')
				} else if err := dec.Skip(); err != nil {
					return fmt.Errorf("parse %s: %w", f.Name, err)
				}
				continue
			}
			depth++
			if t.Name.Local == "spTree" && treeDepth < 0 {
				treeDepth = depth
			}
		case xml.EndElement:
			if depth == treeDepth {
				treeDepth = -1
			}
			depth--
		}
	}

	return nil
}
