package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/resumerag/internal/common"
	"github.com/dmitrijs2005/resumerag/internal/server/resumes"
	"github.com/dmitrijs2005/resumerag/internal/server/users"
)

// UploadField is the multipart field carrying the resume.
const UploadField = "resume"

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type uploadResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type searchRequest struct {
	Query string `json:"query"`
}

func toAuthResponse(res *users.AuthResult) authResponse {
	return authResponse{
		Token: res.Token,
		User:  userResponse{ID: res.User.ID, Email: res.User.Email},
	}
}

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	res, err := s.users.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			abortWithError(c, http.StatusBadRequest, "Email and password are required.")
		case errors.Is(err, common.ErrorAlreadyExists):
			abortWithError(c, http.StatusConflict, "User with this email already exists.")
		default:
			s.logger.Error(c.Request.Context(), "signup failed", "error", err.Error())
			abortWithError(c, http.StatusInternalServerError, "Internal server error during signup.")
		}
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "user_id", res.User.ID)
	c.JSON(http.StatusCreated, toAuthResponse(res))
}

func (s *HTTPServer) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			abortWithError(c, http.StatusBadRequest, "Email and password are required.")
		case errors.Is(err, common.ErrorUnauthorized):
			abortWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
			abortWithError(c, http.StatusInternalServerError, "Internal server error during login.")
		}
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(res))
}

func (s *HTTPServer) upload(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Invalid token.")
		return
	}

	file, err := c.FormFile(UploadField)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "No file uploaded.")
		return
	}
	if file.Size > s.maxUploadSize {
		abortWithError(c, http.StatusRequestEntityTooLarge, "File too large (max "+strconv.FormatInt(s.maxUploadSize>>20, 10)+"MB).")
		return
	}

	f, err := file.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read file.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read file.")
		return
	}

	u, err := s.resumes.Store(c.Request.Context(), userID, file.Filename, data)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			abortWithError(c, http.StatusBadRequest, "Only readable PDF files are accepted.")
			return
		}
		s.logger.Error(c.Request.Context(), "upload failed", "error", err.Error())
		abortWithError(c, http.StatusInternalServerError, "Internal server error during upload.")
		return
	}

	s.logger.Info(c.Request.Context(), "Resume stored", "user_id", userID, "upload_id", u.ID, "pages", u.Pages)
	c.JSON(http.StatusOK, uploadResponse{ID: u.ID, Message: "Resume uploaded and processed successfully!"})
}

func (s *HTTPServer) search(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Invalid token.")
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	results, err := s.resumes.Search(c.Request.Context(), userID, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			abortWithError(c, http.StatusBadRequest, "Search query is required.")
		case errors.Is(err, resumes.ErrNoResume):
			abortWithError(c, http.StatusBadRequest, "Please upload a resume first.")
		default:
			s.logger.Error(c.Request.Context(), "search failed", "error", err.Error())
			abortWithError(c, http.StatusInternalServerError, "Internal server error during search.")
		}
		return
	}

	c.JSON(http.StatusOK, results)
}
