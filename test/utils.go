package test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"stylistapi/config"
	"stylistapi/models"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

const TestJWTSecret = "test-secret"

// TestConfig is the default configuration with a known JWT secret and a
// fixed engine seed.
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Auth.JWTSecret = TestJWTSecret
	cfg.Outfit.Seed = 42
	return cfg
}

// RequireDatabase skips tests that need postgres unless TEST_DATABASE=1.
func RequireDatabase(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_DATABASE") != "1" {
		t.Skip("set TEST_DATABASE=1 to run database tests")
	}
}

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(userPk string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(TestJWTSecret))
	if err != nil {
		panic(fmt.Sprintf("sign token for %s: %v", userPk, err))
	}
	return t
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(userPk)))
	return req
}

func NewJSONAuthRequestRaw(method string, target string, userPk string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(userPk)))
	return req
}

func NewRefString(data string) *string {
	return &data
}

func FakeUser(db *gorm.DB, email string) *models.UserAccount {
	if email == "" {
		email = "email@example.com"
	}
	user := &models.UserAccount{
		Name:                 "OurName",
		Email:                email,
		GoogleID:             "12232",
		Platform:             models.PlatformIOS,
		LastIp:               "123.122.122.122",
		Status:               "FINISHED_AUTH",
		AvatarURL:            "pictureurl",
		ReceiveNotifications: true,
	}
	db.Create(user)
	db.Create(&models.UserPushToken{
		UserAccountID: user.ID,
		Platform:      models.PlatformAndroid,
		Token:         "cX-UZ3zwQEiPt-2GJkG2gA:APA91bGqRflaGrJrnynhRwZ442HdgUjVcO7mWMFnx6IwAdJ9RRKop",
		Active:        true,
	})
	db.Preload("StylePreferences").First(user, user.ID)
	return user
}

func FakeClothing(db *gorm.DB, owner *models.UserAccount, name, category, color string) *models.Clothing {
	clothing := &models.Clothing{
		Name:     name,
		Category: category,
		Color:    NewRefString(color),
		OwnerID:  owner.ID,
		Status:   models.ClothingInCloset,
		ImageURL: NewRefString(fmt.Sprintf("clothes/%d/%s.jpg", owner.ID, strings.ToLower(name))),
	}
	db.Create(clothing)
	return clothing
}

// FakeWardrobe is the smallest closet the engine can dress someone from.
func FakeWardrobe(db *gorm.DB, owner *models.UserAccount) []*models.Clothing {
	return []*models.Clothing{
		FakeClothing(db, owner, "Oxford", "Shirt", "white"),
		FakeClothing(db, owner, "Chinos", "Pants", "beige"),
		FakeClothing(db, owner, "Runners", "Sneakers", "white"),
		FakeClothing(db, owner, "Belt", "Belt", "brown"),
	}
}

type AWSProviderMock struct {
	MockUrl string
}

func (awsService AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService AWSProviderMock) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {
	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/read/%s", fileKey), nil
}

type URLCacheMock struct{}

func (URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", nil
	}
	return "https://cached.example.com/" + objectKey, nil
}

type Notification struct {
	UserID uint
	Title  string
	Body   string
	Data   map[string]string
}

type NotifierMock struct {
	mu   sync.Mutex
	Sent []Notification
	Err  error
}

func (n *NotifierMock) Notify(ctx context.Context, userID uint, title, body string, data map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Sent = append(n.Sent, Notification{UserID: userID, Title: title, Body: body, Data: data})
	return nil
}

func (n *NotifierMock) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Sent)
}

type EnqueuerMock struct {
	mu    sync.Mutex
	Tasks []*asynq.Task
	Err   error
}

func (m *EnqueuerMock) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Tasks = append(m.Tasks, task)
	return &asynq.TaskInfo{ID: fmt.Sprintf("task-%d", len(m.Tasks)), Type: task.Type()}, nil
}
