package handler

import "net/http"

// redirectResponse implements Response for HTTP redirects
type redirectResponse struct {
	url    string
	status int
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, rr.url, rr.status)
	return nil
}

// Redirect creates a 303 See Other redirect, the right status after a
// successful form submission.
func Redirect(url string) Response {
	return redirectResponse{url: url, status: http.StatusSeeOther}
}

// RedirectWithStatus creates a redirect with a custom status code.
func RedirectWithStatus(url string, status int) Response {
	return redirectResponse{url: url, status: status}
}

// RedirectBack redirects to the request's Referer, falling back to the
// given URL when the header is absent.
func RedirectBack(fallback string) Response {
	return redirectBackResponse{fallback: fallback}
}

type redirectBackResponse struct {
	fallback string
}

func (rr redirectBackResponse) Render(w http.ResponseWriter, r *http.Request) error {
	target := r.Referer()
	if target == "" {
		target = rr.fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
	return nil
}
