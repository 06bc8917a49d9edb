package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"markethub/internal/domain/model"
	"markethub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name, username string) model.User {
	t.Helper()
	u := model.User{
		Name:         name,
		Username:     username,
		PasswordHash: "hash",
		Email:        username + "@example.com",
		Role:         model.RoleUser,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestProfileEndpoints(t *testing.T) {
	e, db, cfg := newTestServer(t)

	me := seedUser(t, db, "Taro", "taro123")
	other := seedUser(t, db, "Jiro", "jiro456")
	token := bearerToken(t, cfg, me.ID, "USER")

	//tokenの本人が返る。user_idはpathで渡さない。
	rec := doJSON(e, http.MethodGet, "/api/user/profile", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out usecase.UserOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, me.ID, out.ID)
	assert.Equal(t, "taro123", out.Username)

	//レスポンスにパスワードハッシュが出ない
	assert.NotContains(t, rec.Body.String(), "hash")

	//更新も本人に対してだけ効く
	rec = doJSON(e, http.MethodPut, "/api/user/profile", token,
		`{"name":"Taro Yamada","email":"new@example.com","address":"Osaka","phone_number":"090-1111-2222","password":"new-password-123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated model.User
	require.NoError(t, db.First(&updated, me.ID).Error)
	assert.Equal(t, "Taro Yamada", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "taro123", updated.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password-123")))

	//他のユーザーは無傷
	var untouched model.User
	require.NoError(t, db.First(&untouched, other.ID).Error)
	assert.Equal(t, "Jiro", untouched.Name)
}

func TestProfileEndpoints_ReviewHistory(t *testing.T) {
	e, db, cfg := newTestServer(t)

	me := seedUser(t, db, "Taro", "taro123")
	token := bearerToken(t, cfg, me.ID, "USER")

	p := model.Product{Name: "Keyboard", Price: 1000, StockQuantity: 5}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&model.Review{ProductID: p.ID, UserID: me.ID, Rating: 5, Comment: "good"}).Error)
	require.NoError(t, db.Create(&model.Review{ProductID: p.ID, UserID: me.ID + 100, Rating: 1, Comment: "bad"}).Error)

	rec := doJSON(e, http.MethodGet, "/api/user/review/history", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var items []model.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "good", items[0].Comment)
}

func TestProfileEndpoints_Unauthorized(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/user/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
