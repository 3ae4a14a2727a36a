package utils

import (
	"fmt"
	"net/url"
)

// Image URLs are synthesized, not fetched: Pollinations renders whatever
// prompt appears in the path, so constructing the URL is the whole job.
const (
	imageEndpoint    = "https://image.pollinations.ai/prompt/%s?width=800&height=600&nologo=true"
	imageStyleSuffix = " cinematic travel photography 4k"
)

func BuildImageURL(query string) string {
	prompt := url.PathEscape(query + imageStyleSuffix)
	return fmt.Sprintf(imageEndpoint, prompt)
}
