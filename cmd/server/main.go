package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"cafenotify/internal/api"
	"cafenotify/internal/config"
	"cafenotify/internal/logging"
	"cafenotify/internal/service"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Logging)

	emailSender := service.NewSendGridSender(cfg.Email, log)
	var smsSender service.SMSSender
	if cfg.SMS.Enabled() {
		smsSender = service.NewTwilioSender(cfg.SMS, log)
	}

	svc := service.NewNotifyService(emailSender, smsSender, cfg.SMS.OwnerPhone, cfg.Email, log)
	h := api.NewNotificationHandler(svc, log)

	r := mux.NewRouter()

	// Handlers see every method: preflights are answered by the CORS
	// middleware, anything else is parsed like a POST.
	r.HandleFunc("/api/notifications/booking", h.SendBookingNotification)
	r.HandleFunc("/api/notifications/review", h.SendReviewNotification)
	r.HandleFunc("/api/notifications/contact", h.SendContactNotification)

	handler := handlers.RecoveryHandler()(api.CORSMiddleware(handlers.CombinedLoggingHandler(os.Stdout, r)))

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
