package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"diarycard/internal/handler"
)

func carryCookies(t *testing.T, from *httptest.ResponseRecorder, to *http.Request) {
	t.Helper()
	for _, c := range from.Result().Cookies() {
		to.AddCookie(c)
	}
}

func TestFlashes_AddThenPop(t *testing.T) {
	f := handler.NewFlashes("flash-test-key", false)

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	w := httptest.NewRecorder()
	f.Add(w, req, "error", "Username already exists")

	// The message travels in the cookie to the next request.
	req2 := httptest.NewRequest(http.MethodGet, "/register", nil)
	carryCookies(t, w, req2)
	w2 := httptest.NewRecorder()

	flashes := f.Pop(w2, req2)
	if len(flashes) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(flashes))
	}
	if flashes[0].Kind != "error" || flashes[0].Message != "Username already exists" {
		t.Fatalf("unexpected flash: %+v", flashes[0])
	}

	// Popping cleared the cookie; a third request sees nothing.
	req3 := httptest.NewRequest(http.MethodGet, "/register", nil)
	carryCookies(t, w2, req3)
	w3 := httptest.NewRecorder()

	if rest := f.Pop(w3, req3); len(rest) != 0 {
		t.Fatalf("expected no flashes after pop, got %d", len(rest))
	}
}

func TestFlashes_PopWithoutCookie(t *testing.T) {
	f := handler.NewFlashes("flash-test-key", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	if flashes := f.Pop(w, req); len(flashes) != 0 {
		t.Fatalf("expected no flashes, got %d", len(flashes))
	}
}

func TestFlashes_TamperedCookieIgnored(t *testing.T) {
	f := handler.NewFlashes("flash-test-key", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "diarycard-flash", Value: "garbage"})
	w := httptest.NewRecorder()

	if flashes := f.Pop(w, req); len(flashes) != 0 {
		t.Fatalf("expected no flashes from a tampered cookie, got %d", len(flashes))
	}
}
