package contracts

import "net/http"

type RelayHub interface {
	Run()
	// Serve upgrades the request and relays frames of user until the connection closes.
	Serve(w http.ResponseWriter, r *http.Request, user string) error
	Broadcast(update CellUpdate)
	ClientsCount() int
	Close()
}
