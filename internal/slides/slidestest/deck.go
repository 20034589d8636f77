// Package slidestest builds minimal PPTX decks in memory for tests.
package slidestest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"
)

const (
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relSlide = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
)

// Shape is one element of a slide's shape tree, rendered as XML.
type Shape string

// TextBox is an autoshape whose paragraphs are given in order. A "\v" inside
// a paragraph becomes a line break.
func TextBox(paragraphs ...string) Shape {
	var sb strings.Builder
	sb.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="TextBox"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/>`)
	sb.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	for _, p := range paragraphs {
		sb.WriteString(`<a:p>`)
		for i, line := range strings.Split(p, "\v") {
			if i > 0 {
				sb.WriteString(`<a:br><a:rPr lang="en-US"/></a:br>`)
			}
			if line != "" {
				sb.WriteString(`<a:r><a:rPr lang="en-US"/><a:t>` + html.EscapeString(line) + `</a:t></a:r>`)
			}
		}
		sb.WriteString(`<a:endParaRPr lang="en-US"/></a:p>`)
	}
	sb.WriteString(`</p:txBody></p:sp>`)
	return Shape(sb.String())
}

// Rectangle is an autoshape without a text body.
func Rectangle() Shape {
	return `<p:sp><p:nvSpPr><p:cNvPr id="3" name="Rectangle"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr/></p:sp>`
}

// Picture is an image shape; it never carries text.
func Picture() Shape {
	return `<p:pic><p:nvPicPr><p:cNvPr id="4" name="Picture"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr><p:blipFill/><p:spPr/></p:pic>`
}

// Group wraps shapes in a group shape.
func Group(children ...Shape) Shape {
	var sb strings.Builder
	sb.WriteString(`<p:grpSp><p:nvGrpSpPr><p:cNvPr id="5" name="Group"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)
	for _, c := range children {
		sb.WriteString(string(c))
	}
	sb.WriteString(`</p:grpSp>`)
	return Shape(sb.String())
}

// Parts returns the zip parts of a deck holding the given slides.
func Parts(slides ...[]Shape) map[string]string {
	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
	}

	var ids, rels strings.Builder
	rels.WriteString(`<Relationship Id="rId1" Type="` + relTheme + `" Target="theme/theme1.xml"/>`)

	for i, shapes := range slides {
		rid := fmt.Sprintf("rId%d", i+2)
		ids.WriteString(fmt.Sprintf(`<p:sldId id="%d" r:id="%s"/>`, 256+i, rid))
		rels.WriteString(fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="slides/slide%d.xml"/>`, rid, relSlide, i+1))
		parts[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)] = Slide(shapes...)
	}

	parts["ppt/presentation.xml"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:presentation xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
		`<p:sldIdLst>` + ids.String() + `</p:sldIdLst><p:sldSz cx="12192000" cy="6858000"/></p:presentation>`
	parts["ppt/_rels/presentation.xml.rels"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + rels.String() + `</Relationships>`

	return parts
}

// Slide renders one slide part.
func Slide(shapes ...Shape) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p:sld xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `"><p:cSld><p:spTree>`)
	sb.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)
	for _, s := range shapes {
		sb.WriteString(string(s))
	}
	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return sb.String()
}

// Zip packs parts into a PPTX byte slice.
func Zip(parts map[string]string) []byte {
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Build returns a PPTX holding the given slides.
func Build(slides ...[]Shape) []byte {
	return Zip(Parts(slides...))
}
