package transform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"

	"notepress/internal/assets"
	"notepress/internal/domain"
)

// transformHostedHTML localizes every remote media reference in externally
// hosted HTML: the bytes are downloaded, typed by signature, stored, and
// the reference rewritten to the returned local URL. References that are
// already local, inline data, or relative are left untouched. A failed
// download or store strips the reference instead of failing the document.
func (t *Transformer) transformHostedHTML(ctx context.Context, in Input, markup string) (*Result, error) {
	res := &Result{}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var media []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			media = append(media, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	// Identical remote URLs referenced twice resolve to one stored asset
	// through the store's dedup, but skip the second download outright.
	fetched := make(map[string]*domain.AssetRecord)

	for _, n := range media {
		src := attrValue(n, "src")
		if !t.isRemoteMedia(src) {
			continue
		}

		rec, ok := fetched[src]
		if !ok {
			rec = t.localizeRemote(ctx, in, src, res)
			if rec == nil {
				removeNode(n)
				continue
			}
			fetched[src] = rec
		}

		setAttr(n, "src", rec.URL)
		res.MediaCount++
	}

	res.HTML = strings.TrimSpace(renderBody(doc))
	return res, nil
}

// localizeRemote downloads one remote reference and stores it. A nil
// return means the reference should be stripped; the reason is already
// recorded on res.
func (t *Transformer) localizeRemote(ctx context.Context, in Input, src string, res *Result) *domain.AssetRecord {
	data, err := t.download(ctx, src)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("download %s: %v", src, err))
		return nil
	}

	rec, err := t.assets.Store(ctx, assets.StoreInput{
		Bytes:            data,
		CallerHash:       src,
		MIME:             DetectMIME(data),
		OwnerID:          in.OwnerID,
		Title:            in.Title,
		OriginalFilename: remoteFilename(src),
		ContentDate:      in.ContentDate,
	})
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("store %s: %v", src, err))
		return nil
	}
	return rec
}

func (t *Transformer) isRemoteMedia(src string) bool {
	if src == "" || strings.HasPrefix(src, "data:") {
		return false
	}
	if t.cfg.LocalURLPrefix != "" && strings.HasPrefix(src, t.cfg.LocalURLPrefix) {
		return false
	}
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func (t *Transformer) download(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, t.cfg.DownloadLimit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > t.cfg.DownloadLimit {
		return nil, fmt.Errorf("exceeds %d byte limit", t.cfg.DownloadLimit)
	}
	return data, nil
}

func remoteFilename(src string) string {
	u, err := url.Parse(src)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// renderBody serializes the children of <body>, undoing the document
// wrapping html.Parse applies to fragments.
func renderBody(doc *html.Node) string {
	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if body == nil {
		return ""
	}

	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}
