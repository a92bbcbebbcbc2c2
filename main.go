package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	auth "github.com/Hetgajjar1/MEP-Flow-Designer/internal/auth"
	electrical "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/electrical"
	fire "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/fire"
	hvac "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/hvac"
	plumbing "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/plumbing"
	autodesign "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/premium/autodesign"
	batch "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/premium/batch"
	importer "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/premium/importer"
	recommend "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/premium/recommend"
	report "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/report"
	pay "github.com/Hetgajjar1/MEP-Flow-Designer/internal/pay"
	profile "github.com/Hetgajjar1/MEP-Flow-Designer/internal/profile"
	projects "github.com/Hetgajjar1/MEP-Flow-Designer/internal/projects"
	repo "github.com/Hetgajjar1/MEP-Flow-Designer/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") //у меня нет домена это тестовый сервер
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	// Load TOKEN_KEY from environment
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}
	projectsH := &projects.Handler{Repo: userRepo}
	payH := &pay.Handler{
		Client: pay.NewClient(os.Getenv("PAY_TERMINAL_KEY"), os.Getenv("PAY_PASSWORD")),
		Repo:   userRepo,
	}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/logout", authEnv.LogoutHandler).Methods("POST")
	api.HandleFunc("/pay/notify", payH.Notify).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/upload-avatar", profileH.UploadAvatar).Methods("POST")
	secureApi.HandleFunc("/premium/checkout", payH.Checkout).Methods("POST")

	secureApi.HandleFunc("/projects", projectsH.Create).Methods("POST")
	secureApi.HandleFunc("/projects", projectsH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectsH.Get).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectsH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/projects/{id:[0-9]+}/calculations", projectsH.SaveCalculation).Methods("POST")
	secureApi.HandleFunc("/projects/{id:[0-9]+}/calculations", projectsH.ListCalculations).Methods("GET")

	hvacH := &hvac.Handler{}
	electricalH := &electrical.Handler{}
	plumbingH := &plumbing.Handler{}
	fireH := &fire.Handler{}
	reportH := &report.Handler{}
	autodesignH := &autodesign.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/hvac/heating", hvacH.Heating).Methods("POST")
	secureApi.HandleFunc("/tools/hvac/cooling", hvacH.Cooling).Methods("POST")
	secureApi.HandleFunc("/tools/hvac/ventilation", hvacH.Ventilation).Methods("POST")
	secureApi.HandleFunc("/tools/hvac/capacity", hvacH.Capacity).Methods("POST")
	secureApi.HandleFunc("/tools/hvac/duct", hvacH.Duct).Methods("POST")

	secureApi.HandleFunc("/tools/electrical/demand", electricalH.Demand).Methods("POST")
	secureApi.HandleFunc("/tools/electrical/current", electricalH.Current).Methods("POST")
	secureApi.HandleFunc("/tools/electrical/breaker", electricalH.Breaker).Methods("POST")
	secureApi.HandleFunc("/tools/electrical/wire", electricalH.Wire).Methods("POST")
	secureApi.HandleFunc("/tools/electrical/voltage-drop", electricalH.VoltageDrop).Methods("POST")
	secureApi.HandleFunc("/tools/electrical/short-circuit", electricalH.ShortCircuit).Methods("POST")

	secureApi.HandleFunc("/tools/plumbing/fixture-units", plumbingH.FixtureUnits).Methods("POST")
	secureApi.HandleFunc("/tools/plumbing/supply", plumbingH.Supply).Methods("POST")
	secureApi.HandleFunc("/tools/plumbing/pipe", plumbingH.Pipe).Methods("POST")
	secureApi.HandleFunc("/tools/plumbing/friction", plumbingH.Friction).Methods("POST")
	secureApi.HandleFunc("/tools/plumbing/drain", plumbingH.Drain).Methods("POST")
	secureApi.HandleFunc("/tools/plumbing/water-heater", plumbingH.WaterHeater).Methods("POST")

	secureApi.HandleFunc("/tools/fire/sprinkler", fireH.Sprinkler).Methods("POST")
	secureApi.HandleFunc("/tools/fire/standpipe", fireH.Standpipe).Methods("POST")
	secureApi.HandleFunc("/tools/fire/pump", fireH.Pump).Methods("POST")
	secureApi.HandleFunc("/tools/fire/hydrant", fireH.Hydrant).Methods("POST")
	secureApi.HandleFunc("/tools/fire/spacing", fireH.Spacing).Methods("POST")

	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools/premium/autosize/room", autodesignH.Room).Methods("POST")
	secureApi.HandleFunc("/tools/premium/batch/rooms", batchH.Rooms).Methods("POST")
	secureApi.HandleFunc("/tools/premium/import/feeders", importerH.Feeders).Methods("POST")
	secureApi.HandleFunc("/tools/premium/recommend/service", recommendH.Service).Methods("POST")

	secureApi.HandleFunc("/docs/list", func(w http.ResponseWriter, r *http.Request) {
		type Doc struct {
			Name string `json:"name"`
			Path string `json:"path"`
		}
		var docs []Doc
		fs.WalkDir(os.DirFS("./docs"), ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			docs = append(docs, Doc{Name: d.Name(), Path: path})
			return nil
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(docs)
	}).Methods("GET")

	mux.PathPrefix("/uploads/").
		Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir("./static/uploads/"))))

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	profileFileServer := http.FileServer(http.Dir("./static/profile"))
	mux.Handle("/profile/{id:[0-9]+}", authEnv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/profile/index.html")
	})))
	mux.PathPrefix("/profile/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/profile", profileFileServer)))
	mux.PathPrefix("/docs/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/docs", http.FileServer(http.Dir("./docs")))))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)

}
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")
	fmt.Println("Закрытие активных соединений")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
