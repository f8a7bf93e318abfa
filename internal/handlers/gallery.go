package handlers

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"icongallery/internal/contextutil"
	"icongallery/internal/icons"
	"icongallery/internal/service"
)

//go:embed templates/gallery.html
var galleryHTML string

var (
	iconSizes = []string{"sm", "md", "lg"}
	themes    = []string{"light", "dark"}
)

const (
	defaultSize  = "md"
	defaultTheme = "dark"
)

// GalleryHandler renders the searchable icon grid and the detail panel.
type GalleryHandler struct {
	iconService service.IconService
	markdown    goldmark.Markdown
	template    *template.Template
}

// galleryParams are the page query parameters.
type galleryParams struct {
	Query string
	Icon  string
	Size  string
	Theme string
}

func (p galleryParams) href() string {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Icon != "" {
		v.Set("icon", p.Icon)
	}
	v.Set("size", p.Size)
	v.Set("theme", p.Theme)
	return "/?" + v.Encode()
}

type galleryToggle struct {
	Label  string
	Href   string
	Active bool
}

type galleryIcon struct {
	Key  string
	Href string
	SVG  template.HTML
}

type galleryDetail struct {
	Key         string
	DisplayName string
	Description template.HTML
	Source      string
	SVG         template.HTML
	FileName    string
	DownloadURL string
	CloseHref   string
}

type galleryChrome struct {
	Copy     template.HTML
	Success  template.HTML
	Close    template.HTML
	Download template.HTML
}

// galleryPageData holds template data for the gallery page.
type galleryPageData struct {
	Query    string
	Size     string
	Theme    string
	Sizes    []galleryToggle
	Themes   []galleryToggle
	Icons    []galleryIcon
	Count    int
	Total    int
	Loading  bool
	Error    string
	Selected *galleryDetail
	Chrome   galleryChrome
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(iconService service.IconService) *GalleryHandler {
	return &GalleryHandler{
		iconService: iconService,
		// Raw HTML in descriptions is dropped; only the SVG values are trusted.
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.Linkify,
				extension.Strikethrough,
			),
		),
		template: template.Must(template.New("gallery").Parse(galleryHTML)),
	}
}

// ServeHTTP renders the gallery page.
func (h *GalleryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	q := r.URL.Query()
	params := galleryParams{
		Query: q.Get("q"),
		Icon:  q.Get("icon"),
		Size:  oneOf(q.Get("size"), iconSizes, defaultSize),
		Theme: oneOf(q.Get("theme"), themes, defaultTheme),
	}

	res, err := h.iconService.Search(ctx, service.SearchRequest{Query: params.Query})
	if err != nil {
		logger.WarnContext(ctx, "gallery search failed", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := galleryPageData{
		Query:   params.Query,
		Size:    params.Size,
		Theme:   params.Theme,
		Count:   len(res.Icons),
		Total:   res.Total,
		Loading: res.Status.Loading,
		Error:   res.Status.Error,
		Chrome:  h.chrome(r),
	}

	for _, size := range iconSizes {
		p := params
		p.Size = size
		data.Sizes = append(data.Sizes, galleryToggle{Label: strings.ToUpper(size), Href: p.href(), Active: size == params.Size})
	}
	for _, theme := range themes {
		p := params
		p.Theme = theme
		data.Themes = append(data.Themes, galleryToggle{Label: strings.ToUpper(theme), Href: p.href(), Active: theme == params.Theme})
	}

	data.Icons = make([]galleryIcon, 0, len(res.Icons))
	for _, def := range res.Icons {
		p := params
		p.Icon = def.Key
		data.Icons = append(data.Icons, galleryIcon{
			Key:  def.Key,
			Href: p.href(),
			SVG:  template.HTML(def.Value),
		})
	}

	if params.Icon != "" {
		selected, err := h.detail(r, params)
		if err != nil {
			logger.DebugContext(ctx, "selected icon unavailable", "key", params.Icon, "error", err)
		}
		data.Selected = selected
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, data); err != nil {
		logger.ErrorContext(ctx, "failed to execute gallery template", "error", err)
		http.Error(w, "failed to render gallery", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *GalleryHandler) detail(r *http.Request, params galleryParams) (*galleryDetail, error) {
	d, err := h.iconService.Get(r.Context(), params.Icon)
	if err != nil {
		return nil, err
	}

	description, err := h.renderMarkdown(d.Icon.Description)
	if err != nil {
		return nil, err
	}

	closeParams := params
	closeParams.Icon = ""
	return &galleryDetail{
		Key:         d.Icon.Key,
		DisplayName: d.DisplayName,
		Description: description,
		Source:      d.Icon.Value,
		SVG:         template.HTML(d.Icon.Value),
		FileName:    d.FileName,
		DownloadURL: "/api/icons/" + url.PathEscape(d.Icon.Key) + "/download",
		CloseHref:   closeParams.href(),
	}, nil
}

func (h *GalleryHandler) chrome(r *http.Request) galleryChrome {
	c := h.iconService.Chrome(r.Context())
	return galleryChrome{
		Copy:     template.HTML(c[icons.ChromeCopy].Value),
		Success:  template.HTML(c[icons.ChromeSuccess].Value),
		Close:    template.HTML(c[icons.ChromeClose].Value),
		Download: template.HTML(c[icons.ChromeDownload].Value),
	}
}

func (h *GalleryHandler) renderMarkdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func oneOf(value string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return fallback
}
