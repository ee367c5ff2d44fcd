package order

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderdesk/internal/domain"
	"orderdesk/internal/pkg/policy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newClientRouter(t *testing.T, orders *mockOrderRepo, userID int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(orders, new(mockUserReader), new(mockFileReader))
	h := NewHandler(svc)

	r := gin.New()
	group := r.Group("/clients")
	group.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(domain.RoleClient))
	})
	noopPerm := func(policy.Operation) gin.HandlerFunc {
		return func(c *gin.Context) { c.Next() }
	}
	h.RegisterClientRoutes(group, noopPerm)
	return r
}

// A client update carrying status and totalPrice must not let either reach
// the store: those keys do not exist on the owner patch shape and are
// dropped when the body is decoded.
func TestUpdateAsOwner_StatusAndPriceDropped(t *testing.T) {
	orders := new(mockOrderRepo)
	existing := &domain.Order{ID: 3, OwnerID: 7, Status: domain.StatusNew}
	orders.On("GetByIDAndOwner", mock.Anything, int64(3), int64(7)).Return(existing, nil)

	var written map[string]any
	orders.On("UpdateFields", mock.Anything, int64(3), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(2).(map[string]any)
	}).Return(nil)

	r := newClientRouter(t, orders, 7)
	body := `{"notes":"urgent","status":"done","totalPrice":"99999"}`
	req := httptest.NewRequest(http.MethodPut, "/clients/orders/3", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, written)
	assert.Equal(t, map[string]any{"notes": "urgent"}, written)
	assert.NotContains(t, written, "status")
	assert.NotContains(t, written, "total_price")
}

func TestUpdateAsOwner_ForeignOrderIs404(t *testing.T) {
	orders := new(mockOrderRepo)
	orders.On("GetByIDAndOwner", mock.Anything, int64(3), int64(8)).Return(nil, gorm.ErrRecordNotFound)

	r := newClientRouter(t, orders, 8)
	req := httptest.NewRequest(http.MethodPut, "/clients/orders/3", strings.NewReader(`{"notes":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCreate_MissingFieldsIs400(t *testing.T) {
	orders := new(mockOrderRepo)
	r := newClientRouter(t, orders, 7)

	req := httptest.NewRequest(http.MethodPost, "/clients/orders", strings.NewReader(`{"customerFullName":"Dana"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConfirm_BadIDIs400(t *testing.T) {
	orders := new(mockOrderRepo)
	r := newClientRouter(t, orders, 7)

	req := httptest.NewRequest(http.MethodPut, "/clients/orders/abc/confirm", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}
