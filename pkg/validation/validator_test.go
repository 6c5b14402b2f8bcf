package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	Init()
}

type registerPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
}

func bindJSON(t *testing.T, body string) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p registerPayload
	return c.ShouldBindJSON(&p)
}

func TestStrongPasswordAlias(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Password1@", true},
		{"Aa1@aaaa", true},
		{"short1@A", true},
		{"alllowercase1@", false}, // no uppercase
		{"ALLUPPERCASE1@", false}, // no lowercase
		{"NoDigits@@", false},
		{"NoSpecial11aA", false},
		{"Sh1@", false}, // too short
	}
	for _, tc := range cases {
		err := bindJSON(t, `{"email":"a@b.com","password":"`+tc.password+`"}`)
		if tc.ok && err != nil {
			t.Errorf("%q rejected: %v", tc.password, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q accepted", tc.password)
		}
	}
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := bindJSON(t, `{"email":"not-an-email","password":"Password1@"}`)
	if err == nil {
		t.Fatal("expected binding error")
	}
	details := ToDetails(err)
	if _, ok := details["email"]; !ok {
		t.Errorf("details = %v, want key %q", details, "email")
	}
}

func TestToDetailsMalformedJSON(t *testing.T) {
	err := bindJSON(t, `{"email":`)
	if err == nil {
		t.Fatal("expected binding error")
	}
	if details := ToDetails(err); len(details) == 0 {
		t.Error("malformed json should yield a payload detail")
	}
}

func TestToDetailsNil(t *testing.T) {
	if ToDetails(nil) != nil {
		t.Error("nil error should yield nil details")
	}
}
