package fakebo

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
)

var imageTypeFlags = []string{"products", "categories", "manufacturers", "suppliers", "stores"}

func newImageTypeList() *list {
	l := newList("image_type", "AdminImages", "Image Settings", "id_image_type", []column{
		{Key: "id_image_type", Title: "ID", Filter: filterInput},
		{Key: "name", Title: "Name", Filter: filterInput},
		{Key: "width", Title: "Width", Filter: filterInput},
		{Key: "height", Title: "Height", Filter: filterInput},
		{Key: "products", Title: "Products", Bool: true, Filter: filterSelect},
		{Key: "categories", Title: "Categories", Bool: true, Filter: filterSelect},
		{Key: "manufacturers", Title: "Brands", Bool: true, Filter: filterSelect},
		{Key: "suppliers", Title: "Suppliers", Bool: true, Filter: filterSelect},
		{Key: "stores", Title: "Stores", Bool: true, Filter: filterSelect},
	})
	l.modal = "modalConfirmDeleteType"
	return l
}

func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	l := s.imageTypes
	q := r.URL.Query()

	switch {
	case flagged(q, "delete"+l.id):
		if r.Method != http.MethodPost {
			http.Error(w, "delete requires confirmation", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, ok := s.deleteRow(w, r, l)
		if !ok {
			return
		}
		if r.PostForm.Get("delete_linked_images") == "1" {
			s.cascades = append(s.cascades, id)
		}
		s.redirect(w, r, s.listURL(l, nil), MsgDeleted)
	case r.Method == http.MethodPost && r.PostFormValue("submitRegenerate"+l.id) != "":
		s.regens++
		s.redirect(w, r, s.listURL(l, nil), MsgThumbnailsRegenerated)
	case r.Method == http.MethodPost && r.PostFormValue("submitAdd"+l.id) != "":
		s.saveImageType(w, r)
	case flagged(q, "add"+l.id), flagged(q, "update"+l.id):
		s.imageTypeForm(w, q)
	case r.Method == http.MethodPost:
		s.handleListPost(w, r, l)
	default:
		l.applyQuery(q)
		s.imagesList(w)
	}
}

func (s *Server) imagesList(w http.ResponseWriter) {
	l := s.imageTypes
	p := page{
		Title:   "Image Settings",
		Heading: "Image Settings",
		Toolbar: []toolbarLink{{
			Role:  "page-header-desc-image_type-link",
			URL:   s.listURL(l, url.Values{"addimage_type": {""}}),
			Label: "Add new image type",
		}},
	}

	var body bytes.Buffer
	if err := listTmpl.Execute(&body, s.view(l)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := regenerateTmpl.Execute(&body, s.listURL(l, nil)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderHTML(w, p, body.String())
}

type imageTypeFormView struct {
	Action        string
	ID            int
	Name          string
	Width         string
	Height        string
	Products      switchView
	Categories    switchView
	Manufacturers switchView
	Suppliers     switchView
	Stores        switchView
}

func (s *Server) imageTypeForm(w http.ResponseWriter, q url.Values) {
	l := s.imageTypes
	r := record{}
	title := "Add new"
	if id, err := strconv.Atoi(q.Get(l.idParam)); err == nil {
		if existing, ok := l.find(id); ok {
			r = existing
			title = "Edit: " + existing["name"]
		}
	}

	view := imageTypeFormView{
		Action:        s.listURL(l, nil),
		ID:            l.rowID(r),
		Name:          r["name"],
		Width:         r["width"],
		Height:        r["height"],
		Products:      switchOf(r, "products"),
		Categories:    switchOf(r, "categories"),
		Manufacturers: switchOf(r, "manufacturers"),
		Suppliers:     switchOf(r, "suppliers"),
		Stores:        switchOf(r, "stores"),
	}
	s.render(w, page{Title: "Image Settings > " + title, Heading: title}, imageFormTmpl, view)
}

func (s *Server) saveImageType(w http.ResponseWriter, r *http.Request) {
	l := s.imageTypes
	form := r.PostForm

	name := trimmed(form, "name")
	_, errW := strconv.Atoi(trimmed(form, "width"))
	_, errH := strconv.Atoi(trimmed(form, "height"))
	if name == "" || errW != nil || errH != nil {
		s.flash.danger = "The image type name, width and height are required."
		s.imageTypeForm(w, r.URL.Query())
		return
	}

	rec := record{"name": name, "width": trimmed(form, "width"), "height": trimmed(form, "height")}
	for _, f := range imageTypeFlags {
		rec[f] = boolField(form, f)
	}

	if id, err := strconv.Atoi(form.Get(l.idParam)); err == nil {
		if existing, ok := l.find(id); ok {
			for k, v := range rec {
				existing[k] = v
			}
			s.redirect(w, r, s.listURL(l, nil), MsgUpdated)
			return
		}
	}
	l.insert(rec)
	s.redirect(w, r, s.listURL(l, nil), MsgCreated)
}
