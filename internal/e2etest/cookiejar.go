package e2etest

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// unsafeCookieJar strips the Secure attribute from cookies so that session
// cookies work against the plain-HTTP test server.
type unsafeCookieJar struct {
	jar *cookiejar.Jar
}

func newUnsafeCookieJar() (*unsafeCookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("new cookie jar: %w", err)
	}
	return &unsafeCookieJar{jar: jar}, nil
}

func (j *unsafeCookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	for _, c := range cookies {
		c.Secure = false
	}
	j.jar.SetCookies(u, cookies)
}

func (j *unsafeCookieJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}
