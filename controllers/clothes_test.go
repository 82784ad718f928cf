package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"stylistapi/models"
	"stylistapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClothingOk(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")

	reqBody := CreateClothingIn{
		Name:        "Linen shirt",
		Category:    "  casual   shirt ",
		Description: StrPointer("Light linen, great for summer"),
		Color:       StrPointer("white"),
		FileName:    StrPointer("../../linen.jpg"),
	}
	rec := s.do(test.NewJSONAuthRequest("POST", "/wardrobe/clothes/create", UIntToStr(user.ID), reqBody))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	response := decode[ClothingCreatedResponse](t, rec)
	assert.Equal(t, "Linen shirt", response.ClothingResponse.Name)
	assert.Equal(t, "Casual Shirt", response.ClothingResponse.Category)
	assert.Equal(t, models.ClothingInCloset, response.ClothingResponse.Status)
	assert.True(t, strings.HasPrefix(response.FileUploadUrl, fmt.Sprintf("https://fakebucketurl.com/clothes/%d/", user.ID)))
	assert.True(t, strings.HasSuffix(response.FileUploadUrl, "-linen.jpg"))

	var stored models.Clothing
	require.NoError(t, s.db.First(&stored, response.ClothingResponse.ID).Error)
	assert.Equal(t, user.ID, stored.OwnerID)
	require.NotNil(t, stored.ImageURL)
	assert.NotContains(t, *stored.ImageURL, "..")
}

func TestCreateClothingWithoutImage(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")

	rec := s.do(test.NewJSONAuthRequest("POST", "/wardrobe/clothes/create", UIntToStr(user.ID), CreateClothingIn{Name: "Belt", Category: "belt"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	response := decode[ClothingCreatedResponse](t, rec)
	assert.Empty(t, response.FileUploadUrl)
	assert.Equal(t, "Belt", response.ClothingResponse.Category)
}

func TestCreateClothingInvalidInput(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")

	rec := s.do(test.NewJSONAuthRequest("POST", "/wardrobe/clothes/create", UIntToStr(user.ID), CreateClothingIn{Name: "No category"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	response := decode[map[string]string](t, rec)
	assert.Contains(t, response["error"], "Category")
}

func TestCreateClothingUnauthorized(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()

	rec := s.do(test.NewJSONAuthRequest("POST", "/wardrobe/clothes/create", "", CreateClothingIn{Name: "Shirt", Category: "Shirt"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListClothesGroupsBySlot(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")
	test.FakeWardrobe(s.db, user)
	dress := test.FakeClothing(s.db, user, "Slip", "Dress", "navy")
	test.FakeClothing(s.db, user, "Bomber", "Jacket", "olive")
	other := test.FakeUser(s.db, "other@example.com")
	test.FakeClothing(s.db, other, "Not mine", "Shirt", "red")

	rec := s.do(test.NewJSONAuthRequest("GET", "/wardrobe/clothes/list", UIntToStr(user.ID), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[ClothesListResponse](t, rec)
	require.Len(t, response.Tops, 1)
	assert.Equal(t, "Oxford", response.Tops[0].Name)
	assert.Len(t, response.Bottoms, 1)
	assert.Len(t, response.Footwear, 1)
	assert.Len(t, response.Outerwear, 1)
	assert.Len(t, response.Accessories, 1)
	require.Len(t, response.Dresses, 1)
	assert.Equal(t, dress.ID, response.Dresses[0].ID)
	require.NotNil(t, response.Dresses[0].Uri)
	assert.Equal(t, "https://cached.example.com/"+*dress.ImageURL, *response.Dresses[0].Uri)
}

func TestArchiveClothing(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")
	clothes := test.FakeWardrobe(s.db, user)
	other := test.FakeUser(s.db, "other@example.com")

	rec := s.do(test.NewJSONAuthRequest("DELETE", fmt.Sprintf("/wardrobe/clothes/%d", clothes[0].ID), UIntToStr(other.ID), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(test.NewJSONAuthRequest("DELETE", fmt.Sprintf("/wardrobe/clothes/%d", clothes[0].ID), UIntToStr(user.ID), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(test.NewJSONAuthRequest("GET", "/wardrobe/clothes/list", UIntToStr(user.ID), nil))
	response := decode[ClothesListResponse](t, rec)
	assert.Empty(t, response.Tops)
	assert.Len(t, response.Bottoms, 1)
}
