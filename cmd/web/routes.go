package main

import "net/http"

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authenticate(shared(next)))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("POST /api/register", session(http.HandlerFunc(app.registerPOST)))
	mux.Handle("POST /api/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logoutPOST)))
	mux.Handle("GET /api/session", session(http.HandlerFunc(app.sessionGET)))

	mux.Handle("GET /api/profile", mustSession(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", mustSession(http.HandlerFunc(app.profilePUT)))

	mux.Handle("GET /api/schedule", mustSession(http.HandlerFunc(app.scheduleGET)))
	mux.Handle("GET /api/schedule/plan", mustSession(http.HandlerFunc(app.schedulePlanGET)))
	mux.Handle("POST /api/schedule/generate", mustSession(http.HandlerFunc(app.scheduleGeneratePOST)))
	mux.Handle("PUT /api/schedule/{day}", mustSession(http.HandlerFunc(app.scheduleDayPUT)))

	mux.Handle("GET /api/routines", mustSession(http.HandlerFunc(app.routinesGET)))
	mux.Handle("POST /api/routines", mustSession(http.HandlerFunc(app.routineCreatePOST)))
	mux.Handle("GET /api/routines/{id}", mustSession(http.HandlerFunc(app.routineGET)))
	mux.Handle("PUT /api/routines/{id}", mustSession(http.HandlerFunc(app.routineUpdatePUT)))
	mux.Handle("DELETE /api/routines/{id}", mustSession(http.HandlerFunc(app.routineDELETE)))
	mux.Handle("POST /api/routines/{id}/complete", mustSession(http.HandlerFunc(app.routineCompletePOST)))

	mux.Handle("POST /api/workouts", mustSession(http.HandlerFunc(app.workoutLogPOST)))

	mux.Handle("POST /api/cardio/start", mustSession(http.HandlerFunc(app.cardioStartPOST)))
	mux.Handle("GET /api/cardio", mustSession(http.HandlerFunc(app.cardioStatusGET)))
	mux.Handle("POST /api/cardio/stop", mustSession(http.HandlerFunc(app.cardioStopPOST)))
	mux.Handle("POST /api/cardio/cancel", mustSession(http.HandlerFunc(app.cardioCancelPOST)))

	mux.Handle("GET /api/history", mustSession(http.HandlerFunc(app.historyGET)))
	mux.Handle("DELETE /api/history", mustSession(http.HandlerFunc(app.historyClearDELETE)))
	mux.Handle("DELETE /api/history/{id}", mustSession(http.HandlerFunc(app.historyEntryDELETE)))
	mux.Handle("POST /api/history/{id}/undo", mustSession(http.HandlerFunc(app.historyUndoPOST)))

	mux.Handle("GET /api/analytics", mustSession(http.HandlerFunc(app.analyticsGET)))

	mux.Handle("GET /api/exercises", session(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /api/exercises/{id}", session(http.HandlerFunc(app.exerciseGET)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	mux.Handle("/", session(http.HandlerFunc(app.notFound)))

	return mux
}
