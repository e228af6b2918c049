package scaffold

import (
	"html/template"
	"strings"
	texttemplate "text/template"
)

var indexTemplate = template.Must(template.New("index.html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <h1>Hello from {{.}}</h1>
  <script src="script.js"></script>
</body>
</html>
`))

const styleContent = `body {
  font-family: Arial, sans-serif;
  background-color: #f4f4f4;
  text-align: center;
  padding: 50px;
}
`

// The name lands inside a JS string literal, so it goes through JSEscapeString.
var scriptTemplate = texttemplate.Must(texttemplate.New("script.js").
	Funcs(texttemplate.FuncMap{"js": texttemplate.JSEscapeString}).
	Parse(`console.log("Hello from {{js .}} - script.js loaded!");
`))

func renderIndex(name string) (string, error) {
	var b strings.Builder
	if err := indexTemplate.Execute(&b, name); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderScript(name string) (string, error) {
	var b strings.Builder
	if err := scriptTemplate.Execute(&b, name); err != nil {
		return "", err
	}
	return b.String(), nil
}
