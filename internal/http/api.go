package http

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
	"jessbook/internal/service"
	"jessbook/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth          service.AuthService
	users         service.UserService
	posts         service.PostService
	comments      service.CommentService
	likes         service.LikeService
	relationships service.RelationshipService
	storage       storage.Service
	bucket        string
	keyPrefix     string
	clientURL     string
	logger        *logrus.Logger
}

func NewHandler(
	authSvc service.AuthService,
	users service.UserService,
	posts service.PostService,
	comments service.CommentService,
	likes service.LikeService,
	relationships service.RelationshipService,
	store storage.Service,
	bucket, keyPrefix, clientURL string,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		auth:          authSvc,
		users:         users,
		posts:         posts,
		comments:      comments,
		likes:         likes,
		relationships: relationships,
		storage:       store,
		bucket:        bucket,
		keyPrefix:     keyPrefix,
		clientURL:     clientURL,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(h.clientURL), requestIDMiddleware())

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", h.register)
		authRoutes.POST("/login", h.login)
		authRoutes.GET("/connect", h.requireAuth(), h.connect)
		authRoutes.POST("/logout", h.logout)
		authRoutes.POST("/recover-account", h.recoverAccount)
		authRoutes.POST("/reset-password", h.resetPassword)
	}

	router.GET("/users/:userId", h.getUser)
	router.PUT("/users", h.requireAuth(), h.updateUser)

	router.GET("/posts", h.requireAuth(), h.getFeed)
	router.POST("/posts", h.requireAuth(), h.addPost)
	router.DELETE("/posts/:postId", h.requireAuth(), h.deletePost)

	router.GET("/comments", h.getComments)
	router.POST("/comments", h.requireAuth(), h.addComment)
	router.PUT("/comments/:commentId", h.requireAuth(), h.updateComment)
	router.DELETE("/comments/:commentId", h.requireAuth(), h.deleteComment)

	router.GET("/likes", h.getLikes)
	router.POST("/likes", h.requireAuth(), h.addLike)
	router.DELETE("/likes", h.requireAuth(), h.deleteLike)

	router.GET("/relationships", h.getRelationships)
	router.POST("/relationships", h.requireAuth(), h.addRelationship)
	router.DELETE("/relationships", h.requireAuth(), h.deleteRelationship)

	router.POST("/upload", h.requireAuth(), h.upload)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

// serverError hides internals from the client and logs the cause with the
// request id instead.
func (h *Handler) serverError(c *gin.Context, err error, message string) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(ctxRequestID),
		"path":       c.FullPath(),
	}).WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// handleServiceError maps the common service outcomes for the social routes.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the owner can modify this resource."})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		h.serverError(c, err, "An unknown error occurred.")
	}
}

// --- users ---

func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := h.users.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

type updateUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	City       string `json:"city"`
	Website    string `json:"website"`
	ProfilePic string `json:"profilePic"`
	CoverPic   string `json:"coverPic"`
}

func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	err := h.users.UpdateProfile(c.Request.Context(), loggedInUserID(c), repository.ProfileUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		City:       req.City,
		Website:    req.Website,
		ProfilePic: req.ProfilePic,
		CoverPic:   req.CoverPic,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated."})
}

// --- posts ---

func (h *Handler) getFeed(c *gin.Context) {
	posts, err := h.posts.Feed(c.Request.Context(), loggedInUserID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

type addPostRequest struct {
	Desc string `json:"desc"`
	Img  string `json:"img"`
}

func (h *Handler) addPost(c *gin.Context) {
	var req addPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	if _, err := h.posts.Create(c.Request.Context(), loggedInUserID(c), req.Desc, req.Img); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "New post created."})
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := pathID(c, "postId")
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id, loggedInUserID(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted."})
}

// --- comments ---

func (h *Handler) getComments(c *gin.Context) {
	postID, ok := queryID(c, "postId")
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	resp := make([]CommentResponse, len(comments))
	for i := range comments {
		resp[i] = commentToResponse(comments[i])
	}
	c.JSON(http.StatusOK, resp)
}

type addCommentRequest struct {
	Desc   string `json:"desc"`
	PostID int64  `json:"postId"`
}

func (h *Handler) addComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	if _, err := h.comments.Add(c.Request.Context(), loggedInUserID(c), req.PostID, req.Desc); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "New comment created."})
}

type updateCommentRequest struct {
	Desc string `json:"desc"`
}

func (h *Handler) updateComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	if err := h.comments.Update(c.Request.Context(), id, loggedInUserID(c), req.Desc); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated."})
}

func (h *Handler) deleteComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), id, loggedInUserID(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted."})
}

// --- likes ---

func (h *Handler) getLikes(c *gin.Context) {
	postID, ok := queryID(c, "postId")
	if !ok {
		return
	}

	ids, err := h.likes.ListUserIDs(c.Request.Context(), postID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, ids)
}

type addLikeRequest struct {
	PostID int64 `json:"postId"`
}

func (h *Handler) addLike(c *gin.Context) {
	var req addLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	if err := h.likes.Like(c.Request.Context(), loggedInUserID(c), req.PostID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post liked."})
}

func (h *Handler) deleteLike(c *gin.Context) {
	postID, ok := queryID(c, "postId")
	if !ok {
		return
	}

	if err := h.likes.Unlike(c.Request.Context(), loggedInUserID(c), postID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post unliked."})
}

// --- relationships ---

func (h *Handler) getRelationships(c *gin.Context) {
	followedID, ok := queryID(c, "followedUserId")
	if !ok {
		return
	}

	ids, err := h.relationships.FollowerIDs(c.Request.Context(), followedID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, ids)
}

type addRelationshipRequest struct {
	FollowedUserID int64 `json:"followedUserId"`
}

func (h *Handler) addRelationship(c *gin.Context) {
	var req addRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowedUserID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	if err := h.relationships.Follow(c.Request.Context(), loggedInUserID(c), req.FollowedUserID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User followed."})
}

func (h *Handler) deleteRelationship(c *gin.Context) {
	followedID, ok := queryID(c, "followedUserId")
	if !ok {
		return
	}

	if err := h.relationships.Unfollow(c.Request.Context(), loggedInUserID(c), followedID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User unfollowed."})
}

// --- upload ---

func (h *Handler) upload(c *gin.Context) {
	if h.storage == nil || h.bucket == "" {
		h.serverError(c, errors.New("storage service not configured"), "File storage is not available.")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please, provide a file."})
		return
	}
	defer file.Close()

	key := path.Join(h.keyPrefix, fmt.Sprintf("user-%d", loggedInUserID(c)), uuid.NewString()+path.Ext(header.Filename))
	url, err := h.storage.Upload(c.Request.Context(), h.bucket, key, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.serverError(c, err, "An unknown error occurred while uploading the file.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

// --- helpers and response shapes ---

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name + "."})
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name + "."})
		return 0, false
	}
	return id, true
}

// UserResponse is the outward user record. It never carries the password hash.
type UserResponse struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	ProfilePic       string `json:"profilePic"`
	CoverPic         string `json:"coverPic"`
	City             string `json:"city"`
	Website          string `json:"website"`
	FromAuthProvider string `json:"fromAuthProvider"`
	Role             string `json:"role"`
	CreatedAt        string `json:"createdAt"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		ProfilePic:       user.ProfilePic,
		CoverPic:         user.CoverPic,
		City:             user.City,
		Website:          user.Website,
		FromAuthProvider: user.FromAuthProvider,
		Role:             user.Role,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
}

type PostResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	Desc       string `json:"desc"`
	Img        string `json:"img"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ProfilePic string `json:"profilePic"`
	CreatedAt  string `json:"createdAt"`
}

func postToResponse(post domain.PostWithAuthor) PostResponse {
	return PostResponse{
		ID:         post.ID,
		UserID:     post.UserID,
		Desc:       post.Desc,
		Img:        post.Img,
		FirstName:  post.FirstName,
		LastName:   post.LastName,
		ProfilePic: post.ProfilePic,
		CreatedAt:  post.CreatedAt.Format(time.RFC3339),
	}
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	Desc       string `json:"desc"`
	UserID     int64  `json:"userId"`
	PostID     int64  `json:"postId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ProfilePic string `json:"profilePic"`
	CreatedAt  string `json:"createdAt"`
}

func commentToResponse(comment domain.CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		Desc:       comment.Desc,
		UserID:     comment.UserID,
		PostID:     comment.PostID,
		FirstName:  comment.FirstName,
		LastName:   comment.LastName,
		ProfilePic: comment.ProfilePic,
		CreatedAt:  comment.CreatedAt.Format(time.RFC3339),
	}
}
