package main

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/daygrid/internal/adapters/http"
	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/infrastructure/storage"
	"svw.info/daygrid/internal/render"
	"svw.info/daygrid/internal/usecase"
	"svw.info/daygrid/internal/validator"
	"svw.info/daygrid/web"
)

var (
	serveAddr    string
	servePersist string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&servePersist, "persist-path", "./data", "directory for saved records")
	rootCmd.AddCommand(serveCmd)
}

// boardsShown caps how many tilings the index page renders.
const boardsShown = 3

func runServe(cmd *cobra.Command, args []string) error {
	tiler, kind, err := newTiler()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(servePersist, 0o755); err != nil {
		return err
	}
	svc := usecase.NewService(tiler, validator.New(), storage.NewFS(servePersist))
	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		renderIndex(w, r, svc, tmpl)
	})
	httpadapter.New(svc).Register(mux)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           httpadapter.RequestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		"addr", serveAddr,
		"engine", string(kind),
		"persist", servePersist,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type monthOption struct {
	Num      int
	Name     string
	Selected bool
}

func renderIndex(w http.ResponseWriter, r *http.Request, svc *usecase.Service, tmpl *template.Template) {
	d := domain.Today()
	q := r.URL.Query()
	if q.Get("month") != "" || q.Get("day") != "" {
		month, _ := strconv.Atoi(q.Get("month"))
		day, _ := strconv.Atoi(q.Get("day"))
		if nd, err := domain.NewDate(month, day); err == nil {
			d = nd
		}
	}

	sols, stats, err := svc.SolveDate(r.Context(), d)
	if err != nil {
		http.Error(w, "solve failed", http.StatusInternalServerError)
		return
	}
	a, b := d.Cells()
	boards := make([]string, 0, boardsShown)
	for i := 0; i < len(sols) && i < boardsShown; i++ {
		boards = append(boards, render.Simple(sols[i], a, b))
	}
	months := make([]monthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, monthOption{
			Num:      int(m),
			Name:     domain.MonthLabel(m),
			Selected: m == d.Month,
		})
	}

	data := map[string]any{
		"Date":       d.String(),
		"Day":        d.Day,
		"Months":     months,
		"Count":      len(sols),
		"Boards":     boards,
		"DurationMs": stats.Duration.Milliseconds(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "index.tmpl", data); err != nil {
		logger.Error("template render failed", "err", err)
	}
}
