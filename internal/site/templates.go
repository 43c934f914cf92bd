package site

// pageTemplate wraps one decorated page. Block styling and behaviour are
// supplied by the site's own stylesheet and scripts.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | {{.SiteName}}</title>
<link rel="stylesheet" href="{{.BasePath}}styles/styles.css">
</head>
<body>
<header><a class="site-name" href="{{.BasePath}}index.html">{{.SiteName}}</a></header>
<nav class="site-nav">
<ul>
{{- range .Nav}}
<li class="depth-{{.Depth}}"><a href="{{$.BasePath}}{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Title}}</a></li>
{{- end}}
</ul>
</nav>
<main>
<div>
{{.Content}}
</div>
</main>
</body>
</html>
`
