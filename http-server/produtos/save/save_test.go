package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"react-golang/internal/storage"
)

type MockProdutoSaver struct {
	mock.Mock
}

func (m *MockProdutoSaver) SaveProduto(ctx context.Context, produto *storage.Produto) error {
	args := m.Called(ctx, produto)
	return args.Error(0)
}

func TestSaveProduto_Success(t *testing.T) {
	mockSaver := new(MockProdutoSaver)

	var salvo *storage.Produto
	mockSaver.On("SaveProduto", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			salvo = args.Get(1).(*storage.Produto)
		}).
		Return(nil)

	logger := slog.Default()
	handler := SaveProduto(logger, mockSaver)

	body := `{
		"nome": "Detergente X",
		"unidadeMedida": "litros",
		"valorPago": 90,
		"quantidadeEmbalagem": 5,
		"custoPorUnidade": 999,
		"diluicoes": [{"nivel": "leve", "proporcao": "1:20"}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Produto)
	assert.NotEmpty(t, resp.Produto.ID)

	// Custo por unidade recalculado no servidor: 90 / 5, não o 999 do request.
	assert.Equal(t, 18.0, resp.Produto.CustoPorUnidade)

	// O que foi para o banco é o mesmo produto já saneado.
	assert.NotNil(t, salvo)
	assert.Equal(t, 18.0, salvo.CustoPorUnidade)
	assert.NotNil(t, salvo.TiposEstofadoCompativel)
	assert.NotEmpty(t, salvo.CreatedAt)

	mockSaver.AssertExpectations(t)
}

func TestSaveProduto_SemNome(t *testing.T) {
	mockSaver := new(MockProdutoSaver)
	logger := slog.Default()
	handler := SaveProduto(logger, mockSaver)

	body := `{"nome": "", "quantidadeEmbalagem": 5}`

	req := httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockSaver.AssertNotCalled(t, "SaveProduto")
}

func TestSaveProduto_EmbalagemZero(t *testing.T) {
	mockSaver := new(MockProdutoSaver)
	logger := slog.Default()
	handler := SaveProduto(logger, mockSaver)

	body := `{"nome": "Detergente X", "quantidadeEmbalagem": 0}`

	req := httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockSaver.AssertNotCalled(t, "SaveProduto")
}

func TestSaveProduto_JSONInvalido(t *testing.T) {
	mockSaver := new(MockProdutoSaver)
	logger := slog.Default()
	handler := SaveProduto(logger, mockSaver)

	req := httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader("{broken"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dados inválidos")
}
