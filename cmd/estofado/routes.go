package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getfatoragua "react-golang/http-server/admin/get"
	upfatoragua "react-golang/http-server/admin/update"
	"react-golang/http-server/calculos/calcular"
	getcalculos "react-golang/http-server/calculos/get"
	rmcalculos "react-golang/http-server/calculos/remove"
	"react-golang/http-server/calculos/validacao"
	getclientes "react-golang/http-server/clientes/get"
	rmclientes "react-golang/http-server/clientes/remove"
	saveclientes "react-golang/http-server/clientes/save"
	upclientes "react-golang/http-server/clientes/update"
	getcustos "react-golang/http-server/custos/get"
	getpresets "react-golang/http-server/presets/get"
	getprodutos "react-golang/http-server/produtos/get"
	rmprodutos "react-golang/http-server/produtos/remove"
	saveprodutos "react-golang/http-server/produtos/save"
	upprodutos "react-golang/http-server/produtos/update"
	generate_excel "react-golang/http-server/relatorio/generate-excel"
	rmservicos "react-golang/http-server/servicos/remove"
	saveservicos "react-golang/http-server/servicos/save"
	upservicos "react-golang/http-server/servicos/update"
	"react-golang/internal/config"
	"react-golang/internal/middleware/auth"
	"react-golang/internal/service/calculo"
	"react-golang/internal/service/custo"
	"react-golang/internal/service/relatorio"
	"react-golang/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	calculoService *calculo.CalculoService,
	custoService *custo.CustoService,
	relatorioService *relatorio.RelatorioService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Calculadora
	router.Post("/api/calculos/calcular", calcular.CalcularResultado(log, calculoService))
	router.Get("/api/calculos/validacao", validacao.ValidarCalculos(log))
	router.Get("/api/calculos", getcalculos.GetHistorico(log, storage))
	router.Get("/api/calculos/{id}", getcalculos.GetResultado(log, storage))
	router.Delete("/api/calculos/{id}", rmcalculos.DeleteResultado(log, storage))

	// Presets e rótulos da calculadora
	router.Get("/api/presets", getpresets.GetPresets(log))

	// Catálogo de produtos
	router.Get("/api/produtos", getprodutos.GetProdutos(log, storage))
	router.Post("/api/produtos", saveprodutos.SaveProduto(log, storage))
	router.Put("/api/produtos/{id}", upprodutos.UpdateProduto(log, storage))
	router.Delete("/api/produtos/{id}", rmprodutos.DeleteProduto(log, storage))

	// Clientes e serviços
	router.Get("/api/clientes", getclientes.GetClientes(log, storage))
	router.Get("/api/clientes/{id}", getclientes.GetCliente(log, storage))
	router.Post("/api/clientes", saveclientes.SaveCliente(log, storage))
	router.Put("/api/clientes/{id}", upclientes.UpdateCliente(log, storage))
	router.Delete("/api/clientes/{id}", rmclientes.DeleteCliente(log, storage))

	router.Post("/api/clientes/{clienteId}/servicos", saveservicos.SaveServico(log, storage, custoService))
	router.Post("/api/clientes/{clienteId}/servicos/combo", saveservicos.SaveComboServicos(log, storage, custoService))
	router.Put("/api/clientes/{clienteId}/servicos/{servicoId}", upservicos.UpdateServico(log, storage, custoService))
	router.Delete("/api/clientes/{clienteId}/servicos/{servicoId}", rmservicos.DeleteServico(log, storage))

	// Painel de custos
	router.Get("/api/custos", getcustos.GetEstatisticas(log, storage))
	router.Get("/api/custos/cliente/{id}", getcustos.GetEstatisticasCliente(log, storage))

	// Relatório excel
	router.Get("/api/relatorio/excel", generate_excel.GerarRelatorioExcel(log, relatorioService))

	// Painel admin
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/fator-agua", getfatoragua.GetFatorAguaAdmin(log, storage))
	adminRouter.Put("/fator-agua", upfatoragua.UpdateFatorAguaAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	// Estática do frontend (React/Vite)
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("pasta do frontend não encontrada, servindo só a API", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).Handle("/admin/*",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		}),
	)

	// SPA fallback: qualquer outro caminho → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
