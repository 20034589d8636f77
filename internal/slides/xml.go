package slides

import "encoding/xml"

// presentation is the subset of ppt/presentation.xml that fixes slide order.
type presentation struct {
	SlideIDs []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type relationships struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// autoShape is a p:sp element; only its text body matters here.
type autoShape struct {
	TxBody *struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"txBody"`
}

type paragraph struct {
	Items []paragraphItem `xml:",any"`
}

// paragraphItem is a run (a:r), field (a:fld), line break (a:br) or
// paragraph property element; runs and fields carry their text in a:t.
type paragraphItem struct {
	XMLName xml.Name
	Text    string `xml:"t"`
}

func (p paragraph) text() string {
	var out []byte
	for _, item := range p.Items {
		switch item.XMLName.Local {
		case "r", "fld":
			out = append(out, item.Text...)
		case "br":
			out = append(out, '\v')
		}
	}
	return string(out)
}

func (s autoShape) text() string {
	if s.TxBody == nil {
		return ""
	}
	var out []byte
	for i, p := range s.TxBody.Paragraphs {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, p.text()...)
	}
	return string(out)
}
