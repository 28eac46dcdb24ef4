// Package sitemap renders the public sitemap: the home page plus one page per active vet.
package sitemap

import (
	"bytes"
	"context"
	"encoding/xml"
	"strings"

	"petparrk/internal/repository"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Build renders the sitemap for baseURL and the given vet slugs.
func Build(baseURL string, slugs []string) ([]byte, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	set := urlSet{
		Xmlns: xmlns,
		URLs:  make([]url, 0, len(slugs)+1),
	}
	set.URLs = append(set.URLs, url{Loc: baseURL, ChangeFreq: "weekly", Priority: "1.0"})
	for _, slug := range slugs {
		set.URLs = append(set.URLs, url{Loc: baseURL + "/vet/" + slug, ChangeFreq: "monthly", Priority: "0.8"})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Generator builds the sitemap from the active vets.
type Generator struct {
	vets    repository.VetRepository
	baseURL string
}

// NewGenerator creates a Generator.
func NewGenerator(vets repository.VetRepository, baseURL string) *Generator {
	return &Generator{vets: vets, baseURL: baseURL}
}

// Generate returns the sitemap document and the number of vets it lists.
func (g *Generator) Generate(ctx context.Context) ([]byte, int, error) {
	vets, err := g.vets.ListActive(ctx)
	if err != nil {
		return nil, 0, err
	}
	slugs := make([]string, 0, len(vets))
	for _, v := range vets {
		slugs = append(slugs, v.Slug)
	}
	doc, err := Build(g.baseURL, slugs)
	if err != nil {
		return nil, 0, err
	}
	return doc, len(vets), nil
}
