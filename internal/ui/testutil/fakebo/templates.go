package fakebo

import "html/template"

// The markup mirrors what the legacy admin controllers and the Symfony
// pages render, reduced to the parts page objects address.

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
.dropdown-menu, .modal, .js-hidden { display: none; }
.open > .dropdown-menu { display: block; }
.modal.in { display: block; }
i[class^="icon-"], i[class*=" icon-"] { display: inline-block; min-width: 10px; min-height: 10px; }
</style>
</head>
<body class="{{.BodyClass}}">
<div id="main">
<div id="content" class="bootstrap">
<div class="page-head">
<h2 class="page-title">{{.Heading}}</h2>
<div class="page-bar toolbarBox"><div class="btn-toolbar"><ul class="nav nav-pills pull-right toolbar">
{{range .Toolbar}}<li><a id="{{.ID}}" data-role="{{.Role}}" href="{{.URL}}" class="toolbar_btn">{{.Label}}</a></li>
{{end}}</ul></div></div>
</div>
{{with .Success}}<div class="alert alert-success" role="alert"><div class="alert-text"><p>{{.}}</p></div></div>{{end}}
{{with .Danger}}<div class="alert alert-danger" role="alert"><div class="alert-text"><p>{{.}}</p></div></div>{{end}}
{{.Body}}
</div>
</div>
<script>
(function () {
  function closeMenus() {
    document.querySelectorAll('.open').forEach(function (g) { g.classList.remove('open'); });
  }
  document.addEventListener('click', function (e) {
    var toggle = e.target.closest('[data-toggle="dropdown"]');
    if (toggle) {
      e.preventDefault();
      var group = toggle.parentNode;
      var wasOpen = group.classList.contains('open');
      closeMenus();
      if (!wasOpen) { group.classList.add('open'); }
      return;
    }
    var opener = e.target.closest('[data-modal]');
    if (opener) {
      e.preventDefault();
      closeMenus();
      var modal = document.querySelector(opener.getAttribute('data-modal'));
      var href = opener.getAttribute('data-href');
      if (href) { modal.querySelector('form').setAttribute('action', href); }
      modal.classList.add('in');
      return;
    }
    if (e.target.closest('[data-dismiss="modal"]')) {
      e.preventDefault();
      e.target.closest('.modal').classList.remove('in');
      return;
    }
    var submit = e.target.closest('[data-submit]');
    if (submit) {
      e.preventDefault();
      document.querySelector(submit.getAttribute('data-submit')).submit();
      return;
    }
    var bulk = e.target.closest('[data-bulk]');
    if (!bulk) { return; }
    e.preventDefault();
    closeMenus();
    var form = bulk.closest('form');
    var boxes = form.querySelectorAll('input.row-box');
    switch (bulk.getAttribute('data-bulk')) {
    case 'select':
      boxes.forEach(function (b) { b.checked = true; });
      break;
    case 'unselect':
      boxes.forEach(function (b) { b.checked = false; });
      break;
    case 'delete':
      if (!confirm(bulk.getAttribute('data-confirm'))) { return; }
      var flag = document.createElement('input');
      flag.type = 'hidden';
      flag.name = bulk.getAttribute('data-name');
      flag.value = '1';
      form.appendChild(flag);
      form.submit();
      break;
    }
  });
})();
</script>
</body>
</html>`

const listHTML = `<form method="post" action="{{.Action}}" id="form-{{.ID}}" class="form-horizontal clearfix">
<div class="panel col-lg-12">
<div class="panel-heading">{{.Title}} <span class="badge">{{.Total}}</span></div>
<div class="table-responsive-row clearfix">
<table id="table-{{.ID}}" class="table {{.ID}}">
<thead>
<tr class="nodrag nodrop">
<th class="center fixed-width-xs"></th>
{{range .Headers}}<th><span class="title_box{{if .Sorted}} active{{end}}">{{.Title}}
<a href="{{.DescURL}}"><i class="icon-caret-desc"></i></a>
<a href="{{.AscURL}}"><i class="icon-caret-asc"></i></a>
</span></th>
{{end}}<th></th>
</tr>
<tr class="nodrag nodrop filter row_hover">
<th class="text-center">--</th>
{{range .Headers}}<th>{{if eq .Filter "input"}}<input type="text" class="filter" name="{{.FilterName}}" value="{{.FilterValue}}">{{else if eq .Filter "select"}}<select class="filter" name="{{.FilterName}}" onchange="this.form.submit();">
<option value=""{{if eq .FilterValue ""}} selected{{end}}>-</option>
<option value="1"{{if eq .FilterValue "1"}} selected{{end}}>Yes</option>
<option value="0"{{if eq .FilterValue "0"}} selected{{end}}>No</option>
</select>{{else}}--{{end}}</th>
{{end}}<th class="actions"><span class="pull-right">
<button type="submit" id="submitFilterButton{{.ID}}" name="submitFilter" class="btn btn-default">Search</button>
{{if .Filtered}}<button type="submit" name="submitReset{{.ID}}" class="btn btn-warning">Reset</button>{{end}}
</span></th>
</tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td class="row-selector text-center"><input type="checkbox" name="{{$.ID}}Box[]" value="{{.ID}}" class="noborder row-box"></td>
{{range .Cells}}<td class="pointer column-{{.Key}}">{{if .Bool}}{{if .Enabled}}<span class="list-action-enable action-enabled"><i class="icon-check"></i></span>{{else}}<span class="list-action-enable action-disabled"><i class="icon-remove"></i></span>{{end}}{{else}}{{.Value}}{{end}}</td>
{{end}}<td class="text-right"><div class="btn-group-action"><div class="btn-group pull-right">
<a href="{{.EditURL}}" class="edit btn btn-default" title="Edit"><i class="icon-pencil"></i> Edit</a>
<button type="button" class="btn btn-default dropdown-toggle" data-toggle="dropdown"><i class="icon-caret-down"></i></button>
<ul class="dropdown-menu"><li>{{if $.Modal}}<a href="#" data-modal="#{{$.Modal}}" data-href="{{.DeleteURL}}" class="delete" title="Delete">{{else}}<a href="{{.DeleteURL}}" onclick="return confirm('Delete selected item?');" class="delete" title="Delete">{{end}}<i class="icon-trash"></i> Delete</a></li></ul>
</div></div></td>
</tr>
{{else}}<tr><td class="list-empty" colspan="{{.Colspan}}"><div class="list-empty-msg">No records found</div></td></tr>
{{end}}</tbody>
</table>
</div>
<div class="row">
<div class="col-lg-6"><div class="btn-group bulk-actions dropup">
<button type="button" class="btn btn-default dropdown-toggle" id="bulk_action_menu_{{.ID}}" data-toggle="dropdown">Bulk actions <i class="icon-caret-up"></i></button>
<ul class="dropdown-menu">
<li><a href="#" data-bulk="select"><i class="icon-check-sign"></i> Select all</a></li>
<li><a href="#" data-bulk="unselect"><i class="icon-check-empty"></i> Unselect all</a></li>
<li class="divider"></li>
<li><a href="#" data-bulk="delete" data-name="submitBulkdelete{{.ID}}" data-confirm="Delete selected items?"><i class="icon-trash"></i> Delete selected</a></li>
</ul>
</div></div>
{{if .Paginated}}<div class="col-lg-6">
<div class="pagination">Display
<button type="button" class="btn btn-default dropdown-toggle" data-toggle="dropdown">{{.Limit}} <i class="icon-caret-down"></i></button>
<ul class="dropdown-menu">{{range .Limits}}<li><a href="{{.URL}}" class="pagination-items-page" data-items="{{.N}}">{{.N}}</a></li>{{end}}</ul>
/ {{.Total}} result(s)
</div>
<ul class="pagination pull-right">
<li{{if .First}} class="disabled"{{end}}><a href="{{.PrevURL}}" class="pagination-link"><i class="icon-angle-left"></i></a></li>
{{range .Pages}}<li{{if .Active}} class="active"{{end}}><a href="{{.URL}}" class="pagination-link">{{.N}}</a></li>
{{end}}<li{{if .Last}} class="disabled"{{end}}><a href="{{.NextURL}}" class="pagination-link"><i class="icon-angle-right"></i></a></li>
</ul>
</div>{{end}}
</div>
</div>
</form>
{{if .Modal}}<div class="modal fade" id="{{.Modal}}"><div class="modal-dialog"><div class="modal-content">
<form method="post" action="">
<div class="modal-body">
<p>Are you sure you want to delete this image setting?</p>
<p><input type="checkbox" id="delete_linked_images" name="delete_linked_images" value="1"> <label for="delete_linked_images">Delete the images linked to this image setting</label></p>
</div>
<div class="modal-footer">
<button type="button" class="btn btn-default" data-dismiss="modal">No</button>
<button type="submit" class="btn btn-primary btn-confirm-delete-images-type">Yes</button>
</div>
</form>
</div></div></div>{{end}}`

const regenerateHTML = `<form id="display_regenerate_form" method="post" action="{{.}}" class="defaultForm form-horizontal">
<input type="hidden" name="submitRegenerateimage_type" value="1">
<div class="panel"><div class="panel-heading">Regenerate thumbnails</div>
<div class="panel-footer"><button type="submit" class="btn btn-default" data-modal="#modalRegenerateThumbnails">Regenerate thumbnails</button></div>
</div>
</form>
<div class="modal fade" id="modalRegenerateThumbnails"><div class="modal-dialog"><div class="modal-content">
<form method="post" action="">
<div class="modal-body"><p>Regenerating thumbnails may take a while.</p></div>
<div class="modal-footer">
<button type="button" class="btn btn-default" data-dismiss="modal">Cancel</button>
<button type="button" class="btn btn-primary btn-regenerate-thumbnails" data-submit="#display_regenerate_form">Regenerate</button>
</div>
</form>
</div></div></div>`

const switchHTML = `{{define "switch"}}<span class="switch prestashop-switch fixed-width-lg">
<input type="radio" name="{{.Name}}" id="{{.Name}}_on" value="1"{{if .On}} checked="checked"{{end}}><label for="{{.Name}}_on">Yes</label>
<input type="radio" name="{{.Name}}" id="{{.Name}}_off" value="0"{{if not .On}} checked="checked"{{end}}><label for="{{.Name}}_off">No</label>
<a class="slide-button btn"></a>
</span>{{end}}`

const countryFormHTML = `<form id="country_form" method="post" action="{{.Action}}" class="defaultForm form-horizontal AdminCountries">
{{with .ID}}<input type="hidden" name="id_country" value="{{.}}">{{end}}
<div class="panel" id="fieldset_0">
<div class="panel-heading"><i class="icon-globe"></i> Countries</div>
<div class="form-wrapper">
<div class="form-group"><label for="name_1">Country</label><input type="text" id="name_1" name="name_1" value="{{.Name}}"></div>
<div class="form-group"><label for="iso_code">ISO code</label><input type="text" id="iso_code" name="iso_code" maxlength="3" value="{{.ISOCode}}"></div>
<div class="form-group"><label for="call_prefix">Call prefix</label><input type="text" id="call_prefix" name="call_prefix" value="{{.CallPrefix}}"></div>
<div class="form-group"><label for="id_currency">Default currency</label><select id="id_currency" name="id_currency">
<option value="0">Default store currency</option>
{{range .Currencies}}<option value="{{.ID}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select></div>
<div class="form-group"><label for="id_zone">Zone</label><select id="id_zone" name="id_zone">
{{range .Zones}}<option value="{{.ID}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select></div>
<div class="form-group"><label>Does it need Zip/Postal code?</label>{{template "switch" .NeedZipCode}}</div>
<div class="form-group"><label for="zip_code_format">Zip/Postal code format</label><input type="text" id="zip_code_format" name="zip_code_format" value="{{.ZipCodeFormat}}"></div>
<div class="form-group"><label>Active</label>{{template "switch" .Active}}</div>
<div class="form-group"><label>Contains states</label>{{template "switch" .ContainsStates}}</div>
<div class="form-group"><label>Do you need a tax identification number?</label>{{template "switch" .NeedIdentificationNumber}}</div>
<div class="form-group"><label>Display tax label</label>{{template "switch" .DisplayTaxLabel}}</div>
</div>
<div class="panel-footer"><button type="submit" value="1" id="country_form_submit_btn" name="submitAddcountry" class="btn btn-default pull-right"><i class="process-icon-save"></i> Save</button></div>
</div>
</form>`

const imageTypeFormHTML = `<form id="image_type_form" method="post" action="{{.Action}}" class="defaultForm form-horizontal AdminImages">
{{with .ID}}<input type="hidden" name="id_image_type" value="{{.}}">{{end}}
<div class="panel" id="fieldset_0">
<div class="panel-heading"><i class="icon-picture"></i> Image type</div>
<div class="form-wrapper">
<div class="form-group"><label for="name">Name for the image type</label><input type="text" id="name" name="name" value="{{.Name}}"></div>
<div class="form-group"><label for="width">Width</label><input type="text" id="width" name="width" value="{{.Width}}"></div>
<div class="form-group"><label for="height">Height</label><input type="text" id="height" name="height" value="{{.Height}}"></div>
<div class="form-group"><label>Products</label>{{template "switch" .Products}}</div>
<div class="form-group"><label>Categories</label>{{template "switch" .Categories}}</div>
<div class="form-group"><label>Brands</label>{{template "switch" .Manufacturers}}</div>
<div class="form-group"><label>Suppliers</label>{{template "switch" .Suppliers}}</div>
<div class="form-group"><label>Stores</label>{{template "switch" .Stores}}</div>
</div>
<div class="panel-footer"><button type="submit" value="1" id="image_type_form_submit_btn" name="submitAddimage_type" class="btn btn-default pull-right"><i class="process-icon-save"></i> Save</button></div>
</div>
</form>`

const featureFormHTML = `<form name="feature" method="post" action="{{.Action}}">
<div class="card">
<h3 class="card-header"><i class="material-icons">settings</i> Feature</h3>
<div class="card-body">
<div class="form-group row"><label class="form-control-label">Name</label>
<div class="col-sm locale-input-group js-locale-input-group">
{{range .Languages}}<div class="js-locale-input js-locale-{{.ISO}}"><label for="feature_name_{{.ID}}">{{.ISO}}</label><input type="text" id="feature_name_{{.ID}}" name="feature[name][{{.ID}}]" class="form-control" value="{{.Value}}"></div>
{{end}}</div>
</div>
{{if .Shops}}<div class="form-group row"><label class="form-control-label">Shop association</label>
<ul id="feature_shop_association" class="shop-tree">
{{range .Shops}}<li><input type="checkbox" id="feature_shop_association_{{.ID}}" name="feature[shop_association][]" value="{{.ID}}"{{if .Selected}} checked{{end}}> <label for="feature_shop_association_{{.ID}}">{{.Name}}</label></li>
{{end}}</ul>
</div>{{end}}
</div>
<div class="card-footer"><button type="submit" id="save-button" class="btn btn-primary float-right">Save</button></div>
</div>
</form>`

const featureListHTML = `<div class="card">
<h3 class="card-header">Features ({{len .}})</h3>
<table id="feature_grid_table" class="table"><tbody>
{{range .}}<tr><td class="column-id_feature">{{.ID}}</td><td class="column-name">{{.Name}}</td></tr>
{{end}}</tbody></table>
</div>`

const loginHTML = `<div id="login-panel"><div id="login-header"><h1 class="text-center">PrestaShop</h1></div>
{{with .}}<div id="error" class="alert alert-danger"><ol><li>{{.}}</li></ol></div>{{end}}
<form method="post" action="" id="login_form">
<input type="email" id="email" name="email" class="form-control" placeholder="test@example.com">
<input type="password" id="passwd" name="passwd" class="form-control">
<button type="submit" id="submit_login" name="submitLogin" class="btn btn-primary btn-lg btn-block">Log in</button>
</form>
</div>`

const dashboardHTML = `<div id="dashboard"><p>Welcome back.</p></div>`

var layoutTmpl = template.Must(template.New("layout").Parse(layoutHTML))

func mustParse(name, text string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(switchHTML)).Parse(text))
}

var (
	listTmpl        = mustParse("list", listHTML)
	regenerateTmpl  = mustParse("regenerate", regenerateHTML)
	countryFormTmpl = mustParse("country", countryFormHTML)
	imageFormTmpl   = mustParse("image_type", imageTypeFormHTML)
	featureFormTmpl = mustParse("feature", featureFormHTML)
	featureListTmpl = mustParse("features", featureListHTML)
	loginTmpl       = mustParse("login", loginHTML)
	dashboardTmpl   = mustParse("dashboard", dashboardHTML)
)
