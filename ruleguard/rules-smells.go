package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

func smells(m dsl.Matcher) {
	// Two consecutive guards returning the same value can be merged with ||.
	//      if a { return err }
	//      if b { return err }
	//   => if a || b { return err }
	m.Match(`if $c1 { return $ret }; if $c2 { return $ret }`).
		Report(`two consecutive guards return the same value; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { return $ret }`)

	m.Match(`if $c1 { continue }; if $c2 { continue }`).
		Report(`two consecutive continues; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { continue }`)
}

// Outbound calls to SearXNG must carry the tool call's context so a cancelled
// MCP request aborts its HTTP request.
func contextless(m dsl.Matcher) {
	m.Match(`http.NewRequest($method, $url, $body)`).
		Report(`use http.NewRequestWithContext so the request honors cancellation`).
		Suggest(`http.NewRequestWithContext(ctx, $method, $url, $body)`)

	m.Match(`http.Get($url)`, `http.Head($url)`, `http.Post($url, $ct, $body)`).
		Where(!m.File().Name.Matches(`_test\.go$`)).
		Report(`package-level http helpers ignore context and the shared client; go through searxng.Client`)
}

// Stdout carries JSON-RPC frames for the stdio transport.
func stdout(m dsl.Matcher) {
	m.Match(`fmt.Print($*_)`, `fmt.Println($*_)`, `fmt.Printf($*_)`).
		Report(`stdout belongs to the MCP stdio transport; log through zerolog to stderr`)

	m.Match(`os.Stdout`).
		Where(!m.File().Name.Matches(`main\.go$`)).
		Report(`only cmd/searxng-mcp/main.go may reference os.Stdout`)
}
