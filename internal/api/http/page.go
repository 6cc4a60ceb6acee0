package http

import (
	"html/template"
	"net/http"
)

// NewPageHandler creates handlerfunc serving the dashboard page.
// The page is a thin presentation binder over the json api: it renders the
// view sections the responses describe and keeps no state of its own beyond
// the current project and selection.
func NewPageHandler() http.HandlerFunc {
	tmpl := template.Must(template.New("dashboard").Parse(dashboardPage))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, nil)
	}
}

const dashboardPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>contribdash</title>
<style>
body { font-family: sans-serif; margin: 2em; display: flex; gap: 2em; }
#left { width: 420px; }
#warning { color: #a00; }
#search-frame { width: 500px; height: 600px; border: 0; }
.hidden { display: none; }
dt { font-weight: bold; margin-top: .5em; }
</style>
</head>
<body>
<div id="left">
  <p>
    <input id="project" type="text" placeholder="Enter a project name (i.e. dask)">
    <button id="run">Run</button>
  </p>
  <p id="warning" class="hidden"></p>
  <p><select id="users" class="hidden"></select></p>
  <dl id="profile" class="hidden">
    <dt>Login</dt><dd id="login"></dd>
    <dt>Email</dt><dd id="email"></dd>
    <dt>Company</dt><dd id="company"></dd>
    <dt>Github</dt><dd><a id="github-url" href=""></a></dd>
  </dl>
  <dl id="twitter" class="hidden">
    <dt>Twitter Bio</dt><dd id="twitter-bio"></dd>
    <dt>Twitter Handle</dt><dd id="twitter-handle"></dd>
    <dt>Twitter Location</dt><dd id="twitter-location"></dd>
    <dt>Twitter URL</dt><dd><a id="twitter-url" href=""></a></dd>
  </dl>
</div>
<div id="right">
  <iframe id="search-frame" class="hidden"></iframe>
</div>
<script>
const el = id => document.getElementById(id);
const show = (id, on) => el(id).classList.toggle('hidden', !on);

async function runProject() {
  const project = el('project').value;
  const resp = await fetch('/contributors/' + encodeURIComponent(project));
  ['users', 'profile', 'twitter', 'search-frame'].forEach(id => show(id, false));
  if (!resp.ok) {
    const body = await resp.json().catch(() => ({error: 'Request failed.'}));
    el('warning').textContent = body.error;
    show('warning', true);
    return;
  }
  show('warning', false);
  const body = await resp.json();
  const users = el('users');
  users.innerHTML = '';
  body.options.forEach(o => users.add(new Option(o, o)));
  show('users', true);
  if (body.options.length > 0) selectUser();
}

async function selectUser() {
  const project = el('project').value;
  const user = el('users').value;
  const resp = await fetch('/profile?project=' + encodeURIComponent(project) + '&user=' + encodeURIComponent(user));
  if (!resp.ok) {
    show('profile', false);
    show('twitter', false);
    show('search-frame', false);
    return;
  }
  const p = await resp.json();
  el('login').textContent = p.login;
  el('email').textContent = p.email;
  el('company').textContent = p.company;
  el('github-url').textContent = p.githubUrl;
  el('github-url').href = p.githubUrl;
  show('profile', true);
  if (p.twitter) {
    el('twitter-bio').textContent = p.twitter.bio;
    el('twitter-handle').textContent = p.twitter.handle;
    el('twitter-location').textContent = p.twitter.location;
    el('twitter-url').textContent = p.twitter.url;
    el('twitter-url').href = p.twitter.url;
    show('twitter', true);
  } else {
    show('twitter', false);
  }
  el('search-frame').src = p.searchUrl;
  show('search-frame', true);
}

el('run').addEventListener('click', runProject);
el('project').addEventListener('keydown', e => { if (e.key === 'Enter') runProject(); });
el('users').addEventListener('change', selectUser);
</script>
</body>
</html>
`
