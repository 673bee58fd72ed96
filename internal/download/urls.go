package download

import "strings"

// ParseURLs splits pasted text into gallery URLs. Input may mix newline- and
// space-separated URLs. Tokens that are not http(s) URLs are returned in
// skipped so callers can warn about them instead of silently dropping input.
func ParseURLs(text string) (urls []string, skipped []string) {
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://") {
			urls = append(urls, token)
		} else {
			skipped = append(skipped, token)
		}
	}
	return urls, skipped
}
