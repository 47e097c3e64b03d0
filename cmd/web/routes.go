package main

import (
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		noAuth = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authenticate(shared(next)))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("POST /api/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("GET /api/healthy", noAuth(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/test/timeout", noAuth(http.HandlerFunc(app.testTimeout)))

	mux.Handle("POST /api/checkins", mustSession(http.HandlerFunc(app.checkinPOST)))
	mux.Handle("GET /api/checkins/today", mustSession(http.HandlerFunc(app.checkinTodayGET)))
	mux.Handle("GET /api/checkins/recent", mustSession(http.HandlerFunc(app.checkinRecentGET)))

	mux.Handle("POST /api/workouts/draft", mustSession(http.HandlerFunc(app.workoutDraftPOST)))
	mux.Handle("GET /api/workouts/today", mustSession(http.HandlerFunc(app.workoutTodayGET)))
	mux.Handle("GET /api/workouts/{id}", mustSession(http.HandlerFunc(app.workoutGET)))

	mux.Handle("POST /api/workouts/{id}/start", mustSession(http.HandlerFunc(app.workoutStartPOST)))
	mux.Handle("POST /api/workouts/{id}/complete-set", mustSession(http.HandlerFunc(app.workoutCompleteSetPOST)))
	mux.Handle("POST /api/workouts/{id}/skip-set", mustSession(http.HandlerFunc(app.workoutSkipSetPOST)))
	mux.Handle("POST /api/workouts/{id}/skip-exercise", mustSession(http.HandlerFunc(app.workoutSkipExercisePOST)))
	mux.Handle("POST /api/workouts/{id}/rest/acknowledge", mustSession(http.HandlerFunc(app.workoutAcknowledgeRestPOST)))
	mux.Handle("POST /api/workouts/{id}/substitute", mustSession(http.HandlerFunc(app.workoutSubstitutePOST)))
	mux.Handle("POST /api/workouts/{id}/finish", mustSession(http.HandlerFunc(app.workoutFinishPOST)))
	mux.Handle("GET /api/workouts/{id}/substitutions", mustSession(http.HandlerFunc(app.workoutSubstitutionsGET)))

	mux.Handle("POST /api/rowing/telemetry", mustSession(http.HandlerFunc(app.rowingTelemetryPOST)))
	mux.Handle("GET /api/rowing/latest", mustSession(http.HandlerFunc(app.rowingLatestGET)))

	mux.Handle("GET /api/analytics/summary", mustSession(http.HandlerFunc(app.analyticsSummaryGET)))
	mux.Handle("GET /api/encouragement", mustSession(http.HandlerFunc(app.encouragementGET)))
	mux.Handle("GET /api/export", mustSession(http.HandlerFunc(app.exportGET)))
	mux.Handle("DELETE /api/data", mustSession(http.HandlerFunc(app.dataDELETE)))
	mux.Handle("DELETE /api/data/today", mustSession(http.HandlerFunc(app.dataTodayDELETE)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	mux.Handle("/", noAuth(http.HandlerFunc(app.notFound)))

	return mux
}
