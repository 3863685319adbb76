package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
	"jessbook/internal/service"
)

// --- in-memory repositories ---

type memUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
	updErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (r *memUserRepo) Init(context.Context) error { return nil }

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, repository.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return user.ID, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	if r.updErr != nil {
		return r.updErr
	}
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id int64, update repository.ProfileUpdate) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.FirstName = update.FirstName
	u.LastName = update.LastName
	u.City = update.City
	u.Website = update.Website
	u.ProfilePic = update.ProfilePic
	u.CoverPic = update.CoverPic
	return nil
}

type memPostRepo struct {
	posts  map[int64]*domain.Post
	rels   *memRelationshipRepo
	nextID int64
}

func newMemPostRepo(rels *memRelationshipRepo) *memPostRepo {
	return &memPostRepo{posts: map[int64]*domain.Post{}, rels: rels, nextID: 1}
}

func (r *memPostRepo) Init(context.Context) error { return nil }

func (r *memPostRepo) Create(_ context.Context, post *domain.Post) (int64, error) {
	post.ID = r.nextID
	r.nextID++
	copied := *post
	r.posts[post.ID] = &copied
	return post.ID, nil
}

// Feed mirrors the store contract: own posts plus posts of followed users.
func (r *memPostRepo) Feed(_ context.Context, userID int64) ([]domain.PostWithAuthor, error) {
	var out []domain.PostWithAuthor
	for _, p := range r.posts {
		follows := domain.Relationship{FollowerUserID: userID, FollowedUserID: p.UserID}
		if p.UserID != userID {
			if _, ok := r.rels.rels[follows]; !ok {
				continue
			}
		}
		out = append(out, domain.PostWithAuthor{Post: *p})
	}
	return out, nil
}

func (r *memPostRepo) Delete(_ context.Context, id, ownerID int64) (int64, error) {
	p, ok := r.posts[id]
	if !ok || p.UserID != ownerID {
		return 0, nil
	}
	delete(r.posts, id)
	return 1, nil
}

type memCommentRepo struct {
	comments map[int64]*domain.Comment
	nextID   int64
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[int64]*domain.Comment{}, nextID: 1}
}

func (r *memCommentRepo) Init(context.Context) error { return nil }

func (r *memCommentRepo) ListByPost(_ context.Context, postID int64) ([]domain.CommentWithAuthor, error) {
	var out []domain.CommentWithAuthor
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, domain.CommentWithAuthor{Comment: *c})
		}
	}
	return out, nil
}

func (r *memCommentRepo) Create(_ context.Context, comment *domain.Comment) (int64, error) {
	comment.ID = r.nextID
	r.nextID++
	copied := *comment
	r.comments[comment.ID] = &copied
	return comment.ID, nil
}

func (r *memCommentRepo) Update(_ context.Context, id, ownerID int64, desc string) (int64, error) {
	c, ok := r.comments[id]
	if !ok || c.UserID != ownerID {
		return 0, nil
	}
	c.Desc = desc
	return 1, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id, ownerID int64) (int64, error) {
	c, ok := r.comments[id]
	if !ok || c.UserID != ownerID {
		return 0, nil
	}
	delete(r.comments, id)
	return 1, nil
}

type memLikeRepo struct {
	likes map[domain.Like]struct{}
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: map[domain.Like]struct{}{}}
}

func (r *memLikeRepo) Init(context.Context) error { return nil }

func (r *memLikeRepo) ListUserIDs(_ context.Context, postID int64) ([]int64, error) {
	var ids []int64
	for l := range r.likes {
		if l.PostID == postID {
			ids = append(ids, l.UserID)
		}
	}
	return ids, nil
}

func (r *memLikeRepo) Create(_ context.Context, like domain.Like) error {
	if _, ok := r.likes[like]; ok {
		return repository.ErrDuplicate
	}
	r.likes[like] = struct{}{}
	return nil
}

func (r *memLikeRepo) Delete(_ context.Context, like domain.Like) (int64, error) {
	if _, ok := r.likes[like]; !ok {
		return 0, nil
	}
	delete(r.likes, like)
	return 1, nil
}

type memRelationshipRepo struct {
	rels map[domain.Relationship]struct{}
}

func newMemRelationshipRepo() *memRelationshipRepo {
	return &memRelationshipRepo{rels: map[domain.Relationship]struct{}{}}
}

func (r *memRelationshipRepo) Init(context.Context) error { return nil }

func (r *memRelationshipRepo) ListFollowerIDs(_ context.Context, followedUserID int64) ([]int64, error) {
	var ids []int64
	for rel := range r.rels {
		if rel.FollowedUserID == followedUserID {
			ids = append(ids, rel.FollowerUserID)
		}
	}
	return ids, nil
}

func (r *memRelationshipRepo) Create(_ context.Context, rel domain.Relationship) error {
	if _, ok := r.rels[rel]; ok {
		return repository.ErrDuplicate
	}
	r.rels[rel] = struct{}{}
	return nil
}

func (r *memRelationshipRepo) Delete(_ context.Context, rel domain.Relationship) (int64, error) {
	if _, ok := r.rels[rel]; !ok {
		return 0, nil
	}
	delete(r.rels, rel)
	return 1, nil
}

type fakeMailer struct {
	links []string
	to    []string
	err   error
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.links = append(m.links, resetLink)
	return nil
}

// --- server harness ---

type testServer struct {
	router   *gin.Engine
	userRepo *memUserRepo
	mailer   *fakeMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newMemUserRepo()
	relationshipRepo := newMemRelationshipRepo()
	mailer := &fakeMailer{}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	authSvc := service.NewAuthService(userRepo, mailer, "test-secret", 7*24*time.Hour, time.Hour, "https://client.example.com")

	handler := NewHandler(
		authSvc,
		service.NewUserService(userRepo),
		service.NewPostService(newMemPostRepo(relationshipRepo)),
		service.NewCommentService(newMemCommentRepo()),
		service.NewLikeService(newMemLikeRepo()),
		service.NewRelationshipService(relationshipRepo),
		nil,
		"",
		"uploads",
		"https://client.example.com",
		logger,
	)

	router := gin.New()
	handler.RegisterRoutes(router)

	return &testServer{router: router, userRepo: userRepo, mailer: mailer}
}

func (s *testServer) do(t *testing.T, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerBody(email string) map[string]string {
	return map[string]string{
		"firstName":   "Jane",
		"lastName":    "Doe",
		"email":       email,
		"password":    "Abc123!",
		"confirmPswd": "Abc123!",
	}
}
