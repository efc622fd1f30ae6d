package server

import "strings"

// ReloadPath is the websocket endpoint pages connect to.
const ReloadPath = "/__livereload"

// reloadScript reconnects to ReloadPath on the serving host and reloads the
// page on every "reload" message.
const reloadScript = `<script>(function(){` +
	`var p=location.protocol==="https:"?"wss://":"ws://";` +
	`var ws=new WebSocket(p+location.host+"` + ReloadPath + `");` +
	`ws.onmessage=function(e){if(e.data==="reload"){location.reload();}};` +
	`})();</script>`

// InjectReloadScript inserts the live-reload client into an HTML page.
// Tries </body> first, then after <body>, then appends.
func InjectReloadScript(page string) string {
	lower := asciiLower(page)

	if idx := strings.LastIndex(lower, "</body>"); idx != -1 {
		return page[:idx] + reloadScript + page[idx:]
	}

	if idx := strings.Index(lower, "<body"); idx != -1 {
		if closeIdx := strings.Index(page[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return page[:insertPos] + reloadScript + page[insertPos:]
		}
	}

	return page + reloadScript
}

// asciiLower lowers A-Z only, so byte offsets in the result index page.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
