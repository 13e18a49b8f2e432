package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"trailhead/config"
	"trailhead/controllers"
	dbpkg "trailhead/db"
	"trailhead/mail"
	"trailhead/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// capturingMailer records sent messages and can be told to fail, to drive
// the delivery-failure rollback path.
type capturingMailer struct {
	sent []mail.Message
	fail bool
}

func (m *capturingMailer) Send(msg mail.Message) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// lastResetToken extracts the plaintext reset token from the last mail body.
func (m *capturingMailer) lastResetToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, m.sent)
	body := m.sent[len(m.sent)-1].Body
	i := strings.LastIndex(body, "/resetPassword/")
	require.GreaterOrEqual(t, i, 0, "no reset link in %q", body)
	return strings.TrimSpace(body[i+len("/resetPassword/"):])
}

func setupTest(t *testing.T, mailer mail.Mailer) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	database.LogMode(false)
	dbpkg.Migrate(database)

	var cfg config.Configuration
	cfg.Security.JwtSecret = testSecret
	cfg.Security.JwtExpiresHours = 1
	cfg.Security.ResetTokenTTLMin = 10
	controllers.Setup(cfg, mailer)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)
	return r, database
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func signup(t *testing.T, r *gin.Engine, name, email, password, role string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/users/signup", "", gin.H{
		"name":            name,
		"email":           email,
		"password":        password,
		"passwordConfirm": password,
		"role":            role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}
