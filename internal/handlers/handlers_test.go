package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"folio.dev/internal/catalog"
	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/metrics"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/templates"
)

func newRouter(t *testing.T, c *catalog.Catalog, base string) http.Handler {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content", "projects"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "content", "projects", "bot-discord.md"),
		[]byte("## Commandes\n\n![logo](assets/images/bot.png)\n"),
		0o644,
	))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static", "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "css", "style.css"), []byte("body{}"), 0o644))

	cfg, err := config.LoadFrom(map[string]string{
		"CONTENT_DIR": filepath.Join(dir, "content"),
		"STATIC_DIR":  filepath.Join(dir, "static"),
		"ASSETS_DIR":  filepath.Join(dir, "assets"),
		"BASE_PATH":   base,
	})
	require.NoError(t, err)

	pages, err := templates.New()
	require.NoError(t, err)

	ps := services.NewProjectService(catalog.NewHolder(c))
	store := content.NewStore(cfg.ContentDir, content.NewRenderer(cfg.BasePath))
	return SetupRoutes(cfg, Deps{
		Projects: ps,
		Details:  services.NewDetailService(ps, store, nil),
		Pages:    pages,
		Metrics:  metrics.New(),
	})
}

func fallbackCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Fallback())
	require.NoError(t, err)
	return c
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
	return resp
}

func TestListingPage(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")
	resp := get(t, h, "/?tag=Python&width=1200")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Quoridor 2D")
	require.Contains(t, resp.Body.String(), "Générateur d&#39;incidents ServiceNow")
	require.NotContains(t, resp.Body.String(), "Bot Discord")
}

func TestListingNoMatch(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")
	resp := get(t, h, "/?q=haskell")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Aucun projet pour le moment.")
}

func TestListingEmptyCatalog(t *testing.T) {
	t.Parallel()

	empty, err := catalog.New([]models.Project{})
	require.NoError(t, err)

	resp := get(t, newRouter(t, empty, "/"), "/")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Aucun projet pour le moment.")
}

func TestListingUnavailable(t *testing.T) {
	t.Parallel()

	resp := get(t, newRouter(t, nil, "/"), "/")
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	require.Contains(t, resp.Body.String(), "Erreur lors du chargement des projets.")
}

func TestDetailPage(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")

	resp := get(t, h, "/project?slug=bot-discord")
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	require.Contains(t, body, "<h1>Bot Discord</h1>")
	require.Contains(t, body, `href="#commandes"`)
	require.Contains(t, body, `src="/assets/images/bot.png"`)
	require.Contains(t, body, `href="/project?slug=automatisation-excel-vers-une-template"`)
	require.NotContains(t, body, "Suivant →")

	resp = get(t, h, "/project/quoridor-2d")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Aucun détail supplémentaire.")
	require.NotContains(t, resp.Body.String(), "← Précédent")
}

func TestDetailMissingAndUnknown(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")

	resp := get(t, h, "/project")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Contains(t, resp.Body.String(), "Aucun projet spécifié.")

	resp = get(t, h, "/project.html?slug=nope")
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Contains(t, resp.Body.String(), "Projet introuvable.")
	require.Contains(t, resp.Body.String(), "Retour aux projets")
}

func TestAPIProjects(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")
	resp := get(t, h, "/api/projects?width=1200&page=8&intent=next")
	require.Equal(t, http.StatusOK, resp.Code)

	var listing models.Listing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.Len(t, listing.Projects, 11)
	require.Equal(t, 9, listing.Page.Count)
	require.Equal(t, 0, listing.Page.Index, "next from the last page wraps to the first")
	require.Equal(t, "quoridor-2d", listing.Visible[0].Slug)
}

func TestAPIProject(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")
	resp := get(t, h, "/api/projects/messagerie-temps-reel")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Project    models.ProjectView `json:"project"`
		Navigation models.Navigation  `json:"navigation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Messagerie temps réel", body.Project.Title)
	require.Equal(t, "age-of-stick-2d", body.Navigation.Prev.Slug)
	require.Equal(t, "stockage-type-google-drive-en-cours", body.Navigation.Next.Slug)

	resp = get(t, h, "/api/projects/unknown")
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.JSONEq(t, `{"error":"Project not found"}`, resp.Body.String())
}

func TestAPITagsAndHealth(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")

	resp := get(t, h, "/api/tags")
	require.Equal(t, http.StatusOK, resp.Code)
	var tags []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tags))
	require.Contains(t, tags, "Unity")

	resp = get(t, h, "/api/health")
	require.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestMetricsAndStatic(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")
	get(t, h, "/")

	resp := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `folio_page_views_total{page="listing"} 1`)

	resp = get(t, h, "/static/css/style.css")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "body{}", resp.Body.String())
}

func TestBasePath(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/Portfolio/")

	resp := get(t, h, "/")
	require.Equal(t, http.StatusFound, resp.Code)
	require.Equal(t, "/Portfolio/", resp.Header().Get("Location"))

	resp = get(t, h, "/Portfolio/")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `href="/Portfolio/project?slug=quoridor-2d"`)

	resp = get(t, h, "/Portfolio/project?slug=bot-discord")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `src="/Portfolio/assets/images/bot.png"`)
}

func getWithHeader(t *testing.T, h http.Handler, target, name, value string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(name, value)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestListingViewportHint(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")

	resp := get(t, h, "/")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Header().Get("Accept-CH"), "Sec-CH-Viewport-Width")
	require.Contains(t, resp.Body.String(), `data-size="3"`)

	resp = getWithHeader(t, h, "/", "Sec-CH-Viewport-Width", "390")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `data-size="1"`)
	require.Contains(t, resp.Body.String(), "width=390")

	resp = getWithHeader(t, h, "/", "Viewport-Width", "800.4")
	require.Contains(t, resp.Body.String(), `data-size="2"`)
}

func TestListingResizeIntent(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")
	resp := get(t, h, "/?page=8&intent=resize&to=500")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `data-size="1"`)
	require.Contains(t, resp.Body.String(), "width=500")
}

func TestAPIViewportHint(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")

	var listing models.Listing
	resp := getWithHeader(t, h, "/api/projects", "Sec-CH-Viewport-Width", "600")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))
	require.Equal(t, 1, listing.Page.Size)
	require.Equal(t, 11, listing.Page.Count)

	resp = getWithHeader(t, h, "/api/projects?width=1200", "Sec-CH-Viewport-Width", "600")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))
	require.Equal(t, 3, listing.Page.Size, "an explicit width wins over the hint")

	resp = getWithHeader(t, h, "/api/projects", "Sec-CH-Viewport-Width", "wide")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))
	require.Equal(t, 3, listing.Page.Size)
}

func TestListingKeepsSearchCase(t *testing.T) {
	t.Parallel()

	h := newRouter(t, fallbackCatalog(t), "/")
	resp := get(t, h, "/?q=%20Bot%20DISCORD")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `value="Bot DISCORD"`)
	require.Contains(t, resp.Body.String(), "Bot Discord")
}
