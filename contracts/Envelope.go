package contracts

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

const EventUpdateCell = "update_cell"

// Envelope is a single frame on the real-time channel. Data is decoded according to Event.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func EncodeCellUpdate(update CellUpdate) ([]byte, error) {
	data, err := sonic.Marshal(update)
	if err != nil {
		return nil, err
	}

	return sonic.Marshal(Envelope{Event: EventUpdateCell, Data: data})
}

func DecodeEnvelope(frame []byte) (envelope Envelope, err error) {
	err = sonic.Unmarshal(frame, &envelope)
	return
}

func (e Envelope) CellUpdate() (update CellUpdate, err error) {
	err = sonic.Unmarshal(e.Data, &update)
	return
}
