package fakebo

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// Same constraint the feature form declares for its name.
var genericName = regexp.MustCompile(`^[^<>={}]*$`)

const featureNameMaxLength = 128

type language struct {
	ID  int
	ISO string
}

type shop struct {
	ID   int
	Name string
}

type feature struct {
	ID    int
	Names map[int]string
	Shops []int
}

// Name is the name in the default language.
func (f feature) Name() string {
	return f.Names[1]
}

type languageView struct {
	ID    int
	ISO   string
	Value string
}

type shopView struct {
	ID       int
	Name     string
	Selected bool
}

type featureFormView struct {
	Action    string
	Languages []languageView
	Shops     []shopView
}

func (s *Server) featuresURL(suffix string) string {
	return s.base + "index.php/sell/catalog/features" + suffix
}

// handleFeatures serves /sell/catalog/features, /new and /{id}/edit.
func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request, rest string) {
	switch {
	case rest == "" || rest == "/":
		s.render(w, page{Title: "Features", Heading: "Features"}, featureListTmpl, s.featureRows())
	case rest == "/new":
		s.featureForm(w, r, nil)
	case strings.HasSuffix(rest, "/edit"):
		id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(rest, "/"), "/edit"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		for i := range s.features {
			if s.features[i].ID == id {
				s.featureForm(w, r, &s.features[i])
				return
			}
		}
		http.NotFound(w, r)
	default:
		http.NotFound(w, r)
	}
}

type featureRow struct {
	ID   int
	Name string
}

func (s *Server) featureRows() []featureRow {
	rows := make([]featureRow, len(s.features))
	for i, f := range s.features {
		rows[i] = featureRow{ID: f.ID, Name: f.Name()}
	}
	return rows
}

func (s *Server) featureForm(w http.ResponseWriter, r *http.Request, existing *feature) {
	f := feature{Names: map[int]string{}}
	title := "Add new feature"
	action := s.featuresURL("/new")
	if existing != nil {
		f = *existing
		title = "Editing feature " + f.Name()
		action = s.featuresURL(fmt.Sprintf("/%d/edit", f.ID))
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		submitted := feature{ID: f.ID, Names: map[int]string{}}
		for _, lang := range s.languages {
			submitted.Names[lang.ID] = strings.TrimSpace(r.PostForm.Get(fmt.Sprintf("feature[name][%d]", lang.ID)))
		}
		for _, v := range r.PostForm["feature[shop_association][]"] {
			if id, err := strconv.Atoi(v); err == nil {
				submitted.Shops = append(submitted.Shops, id)
			}
		}

		if msg := s.validateFeature(submitted); msg != "" {
			s.flash.danger = msg
			f = submitted
		} else {
			s.saveFeature(w, r, submitted, existing != nil)
			return
		}
	}

	view := featureFormView{Action: action}
	for _, lang := range s.languages {
		view.Languages = append(view.Languages, languageView{ID: lang.ID, ISO: lang.ISO, Value: f.Names[lang.ID]})
	}
	if s.multistore {
		for _, sh := range s.shops {
			selected := false
			for _, id := range f.Shops {
				selected = selected || id == sh.ID
			}
			view.Shops = append(view.Shops, shopView{ID: sh.ID, Name: sh.Name, Selected: selected})
		}
	}
	s.render(w, page{Title: title, Heading: title, BodyClass: "symfony"}, featureFormTmpl, view)
}

func (s *Server) validateFeature(f feature) string {
	if f.Name() == "" {
		return "The field name is required at least in your default language."
	}
	for _, name := range f.Names {
		if !genericName.MatchString(name) {
			return fmt.Sprintf("%q is invalid.", name)
		}
		if len([]rune(name)) > featureNameMaxLength {
			return fmt.Sprintf("This value is too long. It should have %d characters or less.", featureNameMaxLength)
		}
	}
	if s.multistore && len(f.Shops) == 0 {
		return "You have to select a shop before creating new features."
	}
	return ""
}

func (s *Server) saveFeature(w http.ResponseWriter, r *http.Request, f feature, update bool) {
	if update {
		for i := range s.features {
			if s.features[i].ID == f.ID {
				s.features[i] = f
			}
		}
		s.redirect(w, r, s.featuresURL(""), MsgUpdated)
		return
	}

	f.ID = len(s.features) + 1
	s.features = append(s.features, f)
	s.redirect(w, r, s.featuresURL(""), MsgCreated)
}
