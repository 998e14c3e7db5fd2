package fakebo

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	imagesPage    = "index.php?controller=AdminImages"
	countriesPage = "index.php?controller=AdminCountries"
)

func serve(t *testing.T, s *Server, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func getDoc(t *testing.T, s *Server, target string) *goquery.Document {
	t.Helper()

	rec := serve(t, s, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func badge(t *testing.T, doc *goquery.Document, list string) int {
	t.Helper()

	n, err := strconv.Atoi(strings.TrimSpace(doc.Find("#form-" + list + " .panel-heading .badge").Text()))
	require.NoError(t, err)
	return n
}

func TestImagesList_RendersSeededRows(t *testing.T) {
	s := New()
	doc := getDoc(t, s, s.URL(imagesPage))

	assert.Equal(t, DefaultImageTypeCount, badge(t, doc, "image_type"))
	assert.Equal(t, DefaultImageTypeCount, doc.Find("#table-image_type tbody tr").Length())
	assert.Equal(t, "cart_default", strings.TrimSpace(doc.Find("#table-image_type tbody tr:nth-child(1) td.column-name").Text()))
	assert.Equal(t, 1, doc.Find("#table-image_type tbody tr:nth-child(1) td.column-products span.action-enabled").Length())
	assert.Equal(t, 1, doc.Find("#table-image_type tbody tr:nth-child(1) td.column-stores span.action-disabled").Length())

	assert.Equal(t, 0, doc.Find("button[name='submitResetimage_type']").Length(), "no reset button without filters")
	assert.Equal(t, 1, doc.Find("a[data-role=page-header-desc-image_type-link]").Length())
	assert.Equal(t, 1, doc.Find("#modalConfirmDeleteType #delete_linked_images").Length())
	assert.Equal(t, 0, doc.Find("#form-image_type ul.pagination").Length(), "short lists are not paginated")
	assert.Equal(t, "Image Settings • PrestaShop", doc.Find("title").Text())
}

func TestList_FilterAndReset(t *testing.T) {
	s := New()

	rec := serve(t, s, http.MethodPost, s.URL(imagesPage), url.Values{
		"image_typeFilter_name":     {"default"},
		"image_typeFilter_products": {"1"},
		"submitFilter":              {""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, 5, badge(t, doc, "image_type"))
	assert.Equal(t, 1, doc.Find("button[name='submitResetimage_type']").Length())
	val, _ := doc.Find("[name='image_typeFilter_name']").Attr("value")
	assert.Equal(t, "default", val)

	rec = serve(t, s, http.MethodPost, s.URL(imagesPage), url.Values{"submitResetimage_type": {""}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc = getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, DefaultImageTypeCount, badge(t, doc, "image_type"))
}

func TestList_SortByNumericColumn(t *testing.T) {
	s := New()

	read := func(doc *goquery.Document) []int {
		var widths []int
		doc.Find("#table-image_type tbody td.column-width").Each(func(_ int, sel *goquery.Selection) {
			n, err := strconv.Atoi(strings.TrimSpace(sel.Text()))
			require.NoError(t, err)
			widths = append(widths, n)
		})
		return widths
	}

	asc := read(getDoc(t, s, s.URL(imagesPage+"&image_typeOrderby=width&image_typeOrderway=asc")))
	desc := read(getDoc(t, s, s.URL(imagesPage+"&image_typeOrderby=width&image_typeOrderway=desc")))

	require.Len(t, asc, DefaultImageTypeCount)
	assert.IsNonDecreasing(t, asc)
	assert.IsNonIncreasing(t, desc)
	assert.Equal(t, asc[0], desc[len(desc)-1])
}

func TestList_Pagination(t *testing.T) {
	s := New()

	doc := getDoc(t, s, s.URL(countriesPage))
	assert.Equal(t, DefaultCountryCount, badge(t, doc, "country"))
	assert.Equal(t, defaultLimit, doc.Find("#table-country tbody tr").Length())
	assert.Equal(t, "1", doc.Find("#form-country ul.pagination.pull-right li.active a").Text())
	assert.Equal(t, 1, doc.Find("#form-country .dropdown-menu a[data-items='20']").Length())

	next, ok := doc.Find("#form-country .icon-angle-right").Parent().Attr("href")
	require.True(t, ok)

	doc = getDoc(t, s, next)
	assert.Equal(t, "2", doc.Find("#form-country ul.pagination.pull-right li.active a").Text())
	assert.Equal(t, DefaultCountryCount-defaultLimit, doc.Find("#table-country tbody tr").Length())

	doc = getDoc(t, s, s.URL(countriesPage+"&country_pagination=20"))
	assert.Equal(t, "1", doc.Find("#form-country ul.pagination.pull-right li.active a").Text())
	assert.Equal(t, 20, doc.Find("#table-country tbody tr").Length())
}

func TestImages_DeleteThroughModal(t *testing.T) {
	s := New()

	rec := serve(t, s, http.MethodPost, s.URL(imagesPage+"&id_image_type=2&deleteimage_type"), url.Values{
		"delete_linked_images": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, DefaultImageTypeCount-1, badge(t, doc, "image_type"))
	assert.Equal(t, MsgDeleted, strings.TrimSpace(doc.Find(".alert-success").Text()))
	assert.Equal(t, []int{2}, s.CascadeDeletes())

	// The banner is shown once.
	doc = getDoc(t, s, s.URL(imagesPage))
	assert.Equal(t, 0, doc.Find(".alert-success").Length())

	rec = serve(t, s, http.MethodGet, s.URL(imagesPage+"&id_image_type=3&deleteimage_type"), nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "row delete needs the modal")
}

func TestList_BulkDelete(t *testing.T) {
	s := New()

	form := url.Values{"submitBulkdeleteimage_type": {"1"}}
	for id := 1; id <= DefaultImageTypeCount; id++ {
		form.Add("image_typeBox[]", strconv.Itoa(id))
	}

	rec := serve(t, s, http.MethodPost, s.URL(imagesPage), form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, 0, badge(t, doc, "image_type"))
	assert.Equal(t, 1, doc.Find("#table-image_type tbody td.list-empty").Length())
	assert.Equal(t, MsgBulkDeleted, strings.TrimSpace(doc.Find(".alert-success").Text()))
}

func TestImages_RegenerateThumbnails(t *testing.T) {
	s := New()

	rec := serve(t, s, http.MethodPost, s.URL(imagesPage), url.Values{"submitRegenerateimage_type": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, MsgThumbnailsRegenerated, strings.TrimSpace(doc.Find("div.alert.alert-success").Text()))
	assert.Equal(t, 1, s.Regenerations())
	assert.Equal(t, DefaultImageTypeCount, badge(t, doc, "image_type"))
}

func TestCountries_CreateAndDelete(t *testing.T) {
	s := New()

	doc := getDoc(t, s, s.URL(countriesPage+"&addcountry"))
	assert.Equal(t, "Countries > Add new • PrestaShop", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#active_on[checked]").Length())
	assert.Equal(t, 1, doc.Find("#need_zip_code_off[checked]").Length())

	rec := serve(t, s, http.MethodPost, s.URL(countriesPage), url.Values{
		"name_1":                     {"Wakanda"},
		"iso_code":                   {"WK"},
		"call_prefix":                {"999"},
		"id_currency":                {"1"},
		"id_zone":                    {"1"},
		"need_zip_code":              {"0"},
		"zip_code_format":            {""},
		"active":                     {"1"},
		"contains_states":            {"0"},
		"need_identification_number": {"0"},
		"display_tax_label":          {"0"},
		"submitAddcountry":           {"1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc = getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, MsgCreated, strings.TrimSpace(doc.Find("div.alert.alert-success").Text()))
	assert.Equal(t, DefaultCountryCount+1, badge(t, doc, "country"))

	wakanda, ok := s.Country("Wakanda")
	require.True(t, ok)
	assert.Equal(t, "Euro", wakanda["currency"])
	assert.Equal(t, "Europe", wakanda["zone"])
	assert.Equal(t, "0", wakanda["display_tax_label"])

	rec = serve(t, s, http.MethodGet, s.URL(countriesPage+"&deletecountry&id_country="+wakanda["id_country"]), nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc = getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, MsgDeleted, strings.TrimSpace(doc.Find(".alert-success").Text()))
	assert.Equal(t, DefaultCountryCount, badge(t, doc, "country"))
}

func TestCountries_RejectsInvalidISOCode(t *testing.T) {
	s := New()

	rec := serve(t, s, http.MethodPost, s.URL(countriesPage), url.Values{
		"name_1":           {"Wakanda"},
		"iso_code":         {"W1"},
		"call_prefix":      {"999"},
		"id_zone":          {"1"},
		"submitAddcountry": {"1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, doc.Find(".alert-danger").Text(), "ISO code")
	val, _ := doc.Find("#name_1").Attr("value")
	assert.Equal(t, "Wakanda", val, "submitted values are rendered again")

	_, ok := s.Country("Wakanda")
	assert.False(t, ok)
}

func TestCountries_DeleteLinkRaisesConfirm(t *testing.T) {
	s := New()
	doc := getDoc(t, s, s.URL(countriesPage))

	onclick, ok := doc.Find("#table-country tbody tr:nth-child(1) .btn-group-action ul.dropdown-menu a.delete").Attr("onclick")
	require.True(t, ok)
	assert.Contains(t, onclick, "confirm(")
	assert.Equal(t, 0, doc.Find(".modal").Length())
}

func TestFeatures_CreateWithShopAssociation(t *testing.T) {
	s := New(WithMultistore(), WithLanguages("en", "fr"))

	doc := getDoc(t, s, s.URL("index.php/sell/catalog/features/new"))
	assert.Equal(t, 1, doc.Find("#feature_name_1").Length())
	assert.Equal(t, 1, doc.Find("#feature_name_2").Length())
	assert.Equal(t, 2, doc.Find("#feature_shop_association input[type=checkbox]").Length())

	rec := serve(t, s, http.MethodPost, s.URL("index.php/sell/catalog/features/new"), url.Values{
		"feature[name][1]":            {"Material"},
		"feature[name][2]":            {"Matière"},
		"feature[shop_association][]": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc = getDoc(t, s, rec.Header().Get("Location"))
	assert.Equal(t, MsgCreated, doc.Find("div.alert.alert-success div.alert-text p").Text())
	assert.Equal(t, []string{"Material"}, s.FeatureNames())
	assert.Equal(t, []int{1}, s.FeatureShops("Material"))
}

func TestFeatures_RejectsGenericNameViolation(t *testing.T) {
	s := New()

	rec := serve(t, s, http.MethodPost, s.URL("index.php/sell/catalog/features/new"), url.Values{
		"feature[name][1]": {"<script>"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "is invalid")
	assert.Empty(t, s.FeatureNames())
}

func TestLogin(t *testing.T) {
	s := New(WithCredentials("demo@prestashop.com", "prestashop_demo"))

	rec := serve(t, s, http.MethodGet, s.URL(imagesPage), nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "controller=AdminLogin")

	rec = serve(t, s, http.MethodPost, s.URL("index.php?controller=AdminLogin"), url.Values{
		"email":  {"demo@prestashop.com"},
		"passwd": {"wrong"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgBadCredentials)

	rec = serve(t, s, http.MethodPost, s.URL("index.php?controller=AdminLogin"), url.Values{
		"email":  {"demo@prestashop.com"},
		"passwd": {"prestashop_demo"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, s.URL(imagesPage), nil)
	req.AddCookie(cookies[0])
	out := httptest.NewRecorder()
	s.ServeHTTP(out, req)
	assert.Equal(t, http.StatusOK, out.Code)
}
