package transform

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"notepress/internal/assets"
	"notepress/internal/domain"
)

const (
	noteEnvelopeTag = "en-note"
	noteMediaTag    = "en-media"
)

// Elements written without a closing tag.
var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true,
	"area": true, "col": true, "embed": true, "source": true,
	"track": true, "wbr": true,
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// transformNoteMarkup strips the note markup envelope and rewrites each
// embedded-media placeholder into a standard reference backed by a stored
// asset. Placeholders whose resource cannot be resolved or fetched are
// dropped and recorded; the rest of the note survives.
func (t *Transformer) transformNoteMarkup(ctx context.Context, in Input) (*Result, error) {
	res := &Result{}

	byHash := make(map[string]domain.NoteResource, len(in.Resources))
	for _, r := range in.Resources {
		byHash[r.BodyHash] = r
	}
	// Each distinct hash is fetched and stored at most once per note.
	stored := make(map[string]*domain.AssetRecord)

	dec := xml.NewDecoder(strings.NewReader(in.Markup))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	var b strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse note markup: %w", err)
		}

		switch el := tok.(type) {
		case xml.ProcInst, xml.Directive, xml.Comment:
			// Envelope noise.
		case xml.CharData:
			b.WriteString(htmlEscaper.Replace(string(el)))
		case xml.StartElement:
			name := strings.ToLower(el.Name.Local)
			switch {
			case name == noteEnvelopeTag:
				// Unwrapped; children are emitted directly.
			case name == noteMediaTag:
				b.WriteString(t.resolveNoteMedia(ctx, in, el, byHash, stored, res))
				if err := dec.Skip(); err != nil && err != io.EOF {
					return nil, fmt.Errorf("parse note markup: %w", err)
				}
			default:
				writeOpenTag(&b, name, el.Attr, voidElements[name])
				if voidElements[name] {
					if err := dec.Skip(); err != nil && err != io.EOF {
						return nil, fmt.Errorf("parse note markup: %w", err)
					}
				}
			}
		case xml.EndElement:
			name := strings.ToLower(el.Name.Local)
			if name == noteEnvelopeTag || name == noteMediaTag || voidElements[name] {
				continue
			}
			b.WriteString("</" + name + ">")
		}
	}

	res.HTML = strings.TrimSpace(b.String())
	return res, nil
}

func writeOpenTag(b *strings.Builder, name string, attrs []xml.Attr, void bool) {
	b.WriteString("<" + name)
	for _, a := range attrs {
		b.WriteString(" " + strings.ToLower(a.Name.Local) + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
	if void {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
}

// resolveNoteMedia turns one placeholder into an <img> or download link,
// or an empty string when resolution fails.
func (t *Transformer) resolveNoteMedia(
	ctx context.Context,
	in Input,
	el xml.StartElement,
	byHash map[string]domain.NoteResource,
	stored map[string]*domain.AssetRecord,
	res *Result,
) string {
	var hash, claimedType string
	var width, height int
	for _, a := range el.Attr {
		switch strings.ToLower(a.Name.Local) {
		case "hash":
			hash = a.Value
		case "type":
			claimedType = a.Value
		case "width":
			width, _ = strconv.Atoi(a.Value)
		case "height":
			height, _ = strconv.Atoi(a.Value)
		}
	}

	rsc, ok := byHash[hash]
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("media placeholder references unknown resource %s", hash))
		return ""
	}

	rec, ok := stored[hash]
	if !ok {
		data, err := in.FetchResource(ctx, rsc.GUID)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("fetch resource %s: %v", rsc.GUID, err))
			return ""
		}

		mimeType := rsc.MIME
		if mimeType == "" {
			mimeType = claimedType
		}
		if mimeType == "" {
			mimeType = DetectMIME(data)
		}

		rec, err = t.assets.Store(ctx, assets.StoreInput{
			Bytes:            data,
			CallerHash:       hash,
			MIME:             mimeType,
			OwnerID:          in.OwnerID,
			Title:            in.Title,
			OriginalFilename: rsc.Filename,
			ContentDate:      in.ContentDate,
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("store resource %s: %v", rsc.GUID, err))
			return ""
		}
		stored[hash] = rec
	}

	res.MediaCount++

	if IsImageMIME(rec.MIME) {
		if width == 0 {
			width = rsc.Width
		}
		if height == 0 {
			height = rsc.Height
		}
		tag := `<img src="` + attrEscaper.Replace(rec.URL) + `" alt="` + attrEscaper.Replace(in.Title) + `"`
		if width > 0 && height > 0 {
			tag += fmt.Sprintf(` width="%d" height="%d"`, width, height)
		}
		return tag + "/>"
	}

	label := rsc.Filename
	if label == "" {
		label = rec.Filename
	}
	return `<a href="` + attrEscaper.Replace(rec.URL) + `">` + htmlEscaper.Replace(label) + `</a>`
}
