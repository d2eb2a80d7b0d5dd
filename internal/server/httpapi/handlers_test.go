package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"testing"
)

func (ts *testServer) createThread(t *testing.T, token, title, content string) string {
	t.Helper()
	body := `{"title":"` + title + `","content":"` + content + `"}`
	rec := ts.do(t, http.MethodPost, "/api/threads/create", body, token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("create thread: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/api/threads?size=100", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list threads: status %d", rec.Code)
	}
	var listing []ThreadResponse
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	for _, th := range listing {
		if th.Title == title {
			return th.ID
		}
	}
	t.Fatalf("created thread %q not in listing", title)
	return ""
}

func TestRegister_BadJSONBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/users/register", "{not json", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestRegister_ValidationMessages(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice1", "password123")

	tests := []struct {
		name string
		body string
		want string
	}{
		{"duplicate", `{"username":"alice1","password":"password123","timezone":"UTC"}`, "username already taken"},
		{"short username", `{"username":"abc","password":"password123","timezone":"UTC"}`, "invalid username"},
		{"short password", `{"username":"bobby1","password":"short","timezone":"UTC"}`, "invalid password"},
		{"bad timezone", `{"username":"bobby1","password":"password123","timezone":"Nowhere"}`, "invalid timezone"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/users/register", tc.body, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d", rec.Code)
			}
			if msg := errMessage(t, rec); msg != tc.want {
				t.Fatalf("want message %q, got %q", tc.want, msg)
			}
		})
	}
}

func TestUpdateUsername_RoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice1", "password123")
	token := ts.login(t, "alice1", "password123")

	rec := ts.do(t, http.MethodPut, "/api/users/username?username=alice2renamed", "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("rename: want 204, got %d body %s", rec.Code, rec.Body.String())
	}

	// The old token died with the old subject; log in under the new name.
	rec = ts.do(t, http.MethodGet, "/api/threads", "", token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("old token: want 401, got %d", rec.Code)
	}
	fresh := ts.login(t, "alice2renamed", "password123")
	rec = ts.do(t, http.MethodGet, "/api/threads", "", fresh)
	if rec.Code != http.StatusOK {
		t.Fatalf("fresh token: want 200, got %d", rec.Code)
	}
}

func TestDeleteUser_RoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice1", "password123")
	token := ts.login(t, "alice1", "password123")

	rec := ts.do(t, http.MethodDelete, "/api/users/delete", "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: want 204, got %d body %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/api/threads", "", token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("token of deleted account: want 401, got %d", rec.Code)
	}
}

func TestThreads_ListDefaultsAndValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice1", "password123")
	token := ts.login(t, "alice1", "password123")

	for _, title := range []string{"alpha thread", "bravo thread", "charlie thread"} {
		ts.createThread(t, token, title, "some thread content")
	}

	// Defaults: page 0, size 5, newest first.
	rec := ts.do(t, http.MethodGet, "/api/threads", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: want 200, got %d", rec.Code)
	}
	var listing []ThreadResponse
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing) != 3 || listing[0].Title != "charlie thread" {
		t.Fatalf("unexpected default listing: %+v", listing)
	}

	rec = ts.do(t, http.MethodGet, "/api/threads?page=-1", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative page: want 400, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodGet, "/api/threads?size=abc", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed size: want 400, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodGet, "/api/threads?page=4611686018427387904&size=2", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("overflowing page: want 400, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodGet, "/api/threads?descending=junk", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed descending: want 400, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodGet, "/api/threads?descending=false", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("ascending: want 200, got %d", rec.Code)
	}
	listing = listing[:0]
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("decode ascending listing: %v", err)
	}
	if listing[0].Title != "alpha thread" {
		t.Fatalf("unexpected ascending order: %+v", listing)
	}
}

func TestThreads_OwnershipUniform400(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice1", "password123")
	ts.register(t, "mallory1", "password123")
	aliceToken := ts.login(t, "alice1", "password123")
	malloryToken := ts.login(t, "mallory1", "password123")

	threadID := ts.createThread(t, aliceToken, "alice thread", "original content")

	// Someone else's thread and a nonexistent thread answer identically
	// at the status level.
	recOther := ts.do(t, http.MethodPut,
		"/api/threads/content?id="+url.QueryEscape(threadID)+"&content=hijacked+content", "", malloryToken)
	recGhost := ts.do(t, http.MethodPut,
		"/api/threads/content?id=missing-id&content=hijacked+content", "", malloryToken)

	if recOther.Code != http.StatusBadRequest || recGhost.Code != http.StatusBadRequest {
		t.Fatalf("want 400/400, got %d/%d", recOther.Code, recGhost.Code)
	}

	// The owner can still edit, close, and delete.
	rec := ts.do(t, http.MethodPut,
		"/api/threads/content?id="+url.QueryEscape(threadID)+"&content=edited+content", "", aliceToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("owner edit: want 204, got %d body %s", rec.Code, rec.Body.String())
	}
	rec = ts.do(t, http.MethodPut,
		"/api/threads/closed?id="+url.QueryEscape(threadID)+"&closed=junk", "", aliceToken)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed closed: want 400, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodPut,
		"/api/threads/closed?id="+url.QueryEscape(threadID)+"&closed=true", "", aliceToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("owner close: want 204, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodDelete,
		"/api/threads/delete?id="+url.QueryEscape(threadID), "", aliceToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("owner delete: want 204, got %d", rec.Code)
	}
}

func TestComments_LifecycleAndTimeFormat(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice1", "password123")
	token := ts.login(t, "alice1", "password123")
	threadID := ts.createThread(t, token, "alice thread", "thread content")

	body := `{"thread_id":"` + threadID + `","content":"a fine comment"}`
	rec := ts.do(t, http.MethodPost, "/api/comments/create", body, token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("create comment: want 204, got %d body %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/api/comments?id="+url.QueryEscape(threadID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list comments: want 200, got %d", rec.Code)
	}
	var listing []CommentResponse
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing) != 1 || listing[0].Content != "a fine comment" {
		t.Fatalf("unexpected listing: %+v", listing)
	}
	if ok, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, listing[0].PublishedAt); !ok {
		t.Fatalf("unexpected timestamp format %q", listing[0].PublishedAt)
	}

	commentID := listing[0].ID
	rec = ts.do(t, http.MethodPut,
		"/api/comments/content?id="+url.QueryEscape(commentID)+"&content=edited+comment", "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("edit comment: want 204, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodDelete,
		"/api/comments/delete?id="+url.QueryEscape(commentID), "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete comment: want 204, got %d", rec.Code)
	}
}

func TestComments_ClosedThread(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice1", "password123")
	token := ts.login(t, "alice1", "password123")
	threadID := ts.createThread(t, token, "alice thread", "thread content")

	rec := ts.do(t, http.MethodPut,
		"/api/threads/closed?id="+url.QueryEscape(threadID)+"&closed=true", "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("close: want 204, got %d", rec.Code)
	}

	body := `{"thread_id":"` + threadID + `","content":"too late to comment"}`
	rec = ts.do(t, http.MethodPost, "/api/comments/create", body, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if msg := errMessage(t, rec); msg != "thread is closed" {
		t.Fatalf("unexpected message %q", msg)
	}
}
