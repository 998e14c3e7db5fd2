// Package fakebo is an in-memory back office serving the markup of the
// legacy admin lists and forms (image types, countries), the Symfony feature
// form and the login page. Browser tests drive it through httptest; offline
// tests render it and inspect the HTML with goquery.
package fakebo

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	DefaultBasePath = "/admin-dev/"
	ShopName        = "PrestaShop"

	sessionCookie = "PrestaShop-admin"
)

// Banner texts, as the back office words them.
const (
	MsgCreated               = "Successful creation"
	MsgUpdated               = "Successful update"
	MsgDeleted               = "Successful deletion"
	MsgBulkDeleted           = "The selection has been successfully deleted."
	MsgThumbnailsRegenerated = "The thumbnails were successfully regenerated."
	MsgBadCredentials        = "The employee does not exist, or the password provided is incorrect."
)

// Server is safe for concurrent use; every request holds its lock.
type Server struct {
	mu sync.Mutex

	base         string
	email        string
	password     string
	requireLogin bool
	multistore   bool
	log          zerolog.Logger

	imageTypes *list
	countries  *list
	features   []feature
	languages  []language
	shops      []shop

	sessions map[string]bool
	flash    flash
	cascades []int
	regens   int
}

type flash struct {
	success string
	danger  string
}

// Option configures a Server.
type Option func(*Server)

// WithBasePath mounts the back office under path instead of /admin-dev/.
func WithBasePath(path string) Option {
	return func(s *Server) {
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		s.base = path
	}
}

// WithCredentials requires a login with email and password before any other
// page is served.
func WithCredentials(email, password string) Option {
	return func(s *Server) {
		s.email = email
		s.password = password
		s.requireLogin = true
	}
}

// WithMultistore renders the shop association tree on the feature form.
func WithMultistore() Option {
	return func(s *Server) {
		s.multistore = true
	}
}

// WithLanguages replaces the installed languages (ISO codes, ids from 1).
func WithLanguages(isoCodes ...string) Option {
	return func(s *Server) {
		s.languages = s.languages[:0]
		for i, iso := range isoCodes {
			s.languages = append(s.languages, language{ID: i + 1, ISO: iso})
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// New returns a back office seeded with the default image types and
// countries.
func New(opts ...Option) *Server {
	s := &Server{
		base:      DefaultBasePath,
		log:       zerolog.Nop(),
		languages: []language{{ID: 1, ISO: "en"}},
		shops:     []shop{{ID: 1, Name: "Demo shop"}, {ID: 2, Name: "Second shop"}},
		sessions:  map[string]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.imageTypes = seedImageTypes()
	s.countries = seedCountries()
	return s
}

// URL returns the path of a back-office page relative to the server root,
// e.g. URL("index.php?controller=AdminImages").
func (s *Server) URL(page string) string {
	return s.base + page
}

// ServeHTTP dispatches on the legacy controller parameter or the Symfony
// route.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug().Str("method", r.Method).Str("url", r.URL.String()).Msg("fakebo request")

	rel, ok := strings.CutPrefix(r.URL.Path, s.base)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if rel == "index.php" && r.URL.Query().Get("controller") == "AdminLogin" {
		s.handleLogin(w, r)
		return
	}
	if !s.authenticated(r) {
		http.Redirect(w, r, s.URL("index.php?controller=AdminLogin"), http.StatusFound)
		return
	}

	switch {
	case rel == "index.php":
		switch r.URL.Query().Get("controller") {
		case "AdminImages":
			s.handleImages(w, r)
		case "AdminCountries":
			s.handleCountries(w, r)
		case "AdminDashboard", "":
			s.render(w, page{Title: "Dashboard", Heading: "Dashboard"}, dashboardTmpl, nil)
		default:
			http.NotFound(w, r)
		}
	case strings.HasPrefix(rel, "index.php/sell/catalog/features"):
		s.handleFeatures(w, r, strings.TrimPrefix(rel, "index.php/sell/catalog/features"))
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) authenticated(r *http.Request) bool {
	if !s.requireLogin {
		return true
	}
	c, err := r.Cookie(sessionCookie)
	return err == nil && s.sessions[c.Value]
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.render(w, page{Title: "Login", BodyClass: "ps_back-office page-login"}, loginTmpl, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("email") != s.email || r.PostForm.Get("passwd") != s.password {
		s.render(w, page{Title: "Login", BodyClass: "ps_back-office page-login"}, loginTmpl, MsgBadCredentials)
		return
	}

	token := newToken()
	s.sessions[token] = true
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: token, Path: s.base, HttpOnly: true})
	http.Redirect(w, r, s.URL("index.php?controller=AdminDashboard"), http.StatusSeeOther)
}

func newToken() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

type toolbarLink struct {
	ID    string
	Role  string
	URL   string
	Label string
}

type page struct {
	Title     string
	Heading   string
	BodyClass string
	Toolbar   []toolbarLink
	Success   string
	Danger    string
	Body      template.HTML
}

// render executes body into the layout. Pending flash messages are shown
// once and cleared.
func (s *Server) render(w http.ResponseWriter, p page, body *template.Template, data any) {
	var buf bytes.Buffer
	if err := body.Execute(&buf, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderHTML(w, p, buf.String())
}

func (s *Server) renderHTML(w http.ResponseWriter, p page, body string) {
	p.Body = template.HTML(body)
	p.Title = p.Title + " • " + ShopName

	if p.Success == "" {
		p.Success = s.flash.success
	}
	if p.Danger == "" {
		p.Danger = s.flash.danger
	}
	s.flash = flash{}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layoutTmpl.Execute(w, p); err != nil {
		s.log.Error().Err(err).Msg("render layout")
	}
}

// redirect finishes a POST the way the back office does: a flash message
// and a redirect to the list.
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, to, success string) {
	s.flash.success = success
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func controllerURL(base, controller string, extra url.Values) string {
	q := url.Values{"controller": {controller}}
	for k, v := range extra {
		q[k] = v
	}
	return base + "index.php?" + q.Encode()
}

// flagged reports whether a bare query flag like "&addcountry" is present.
func flagged(q url.Values, name string) bool {
	_, ok := q[name]
	return ok
}

// CascadeDeletes lists the image type ids deleted together with their
// images.
func (s *Server) CascadeDeletes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.cascades...)
}

// Regenerations counts thumbnail regeneration requests.
func (s *Server) Regenerations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regens
}

// FeatureNames returns the default-language name of every feature.
func (s *Server) FeatureNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.features))
	for i, f := range s.features {
		names[i] = f.Name()
	}
	return names
}

// FeatureShops returns the shops the feature named name is associated with.
func (s *Server) FeatureShops(name string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.features {
		if f.Name() == name {
			return append([]int(nil), f.Shops...)
		}
	}
	return nil
}

// Country returns the stored attributes of the country named name.
func (s *Server) Country(name string) (map[string]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.countries.rows {
		if r["name"] == name {
			out := make(map[string]string, len(r))
			for k, v := range r {
				out[k] = v
			}
			return out, true
		}
	}
	return nil, false
}
