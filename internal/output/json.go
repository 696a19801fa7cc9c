package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	Number    int               `json:"number"`
	Tags      map[string]string `json:"tags,omitempty"`
	Moves     []JSONMove        `json:"moves,omitempty"`
	Result    string            `json:"result"`
	Declared  string            `json:"declaredResult,omitempty"`
	Status    string            `json:"status"`
	PlyCount  int               `json:"plyCount"`
	Hash      string            `json:"hash,omitempty"`
	Duplicate bool              `json:"duplicate,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format. The rook half of a castle is
// folded into the king's move.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game as one line of JSON.
func OutputGameJSON(res worker.ProcessResult, w io.Writer) error {
	return json.NewEncoder(w).Encode(GameToJSON(res))
}

// OutputGamesJSON writes games as an indented JSON object holding an array.
func OutputGamesJSON(results []worker.ProcessResult, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(results))
	for i, res := range results {
		jsonGames[i] = GameToJSON(res)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a replay result to JSON format.
func GameToJSON(res worker.ProcessResult) *JSONGame {
	jg := &JSONGame{
		Number:    res.Script.Number,
		Tags:      copyTags(res.Script.Tags),
		Result:    result(res),
		Status:    res.Status.String(),
		PlyCount:  res.Plies,
		Duplicate: res.OutputToDup,
	}
	if res.ResultMismatch() {
		jg.Declared = res.Script.Result
	}
	if res.Error != nil {
		jg.Error = res.Error.Error()
	}
	if res.Board != nil {
		jg.Moves = convertMoveList(res.Board.Moves())
		jg.Hash = fmt.Sprintf("%016x", res.Signature.Hash)
	}
	return jg
}

func copyTags(tags chess.Tags) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}

func convertMoveList(records []chess.MoveRecord) []JSONMove {
	var moves []JSONMove
	for _, r := range records {
		if r.Castle && r.Piece.Kind == chess.Rook {
			continue
		}
		jm := JSONMove{
			Ply:       len(moves) + 1,
			Color:     strings.ToLower(r.Piece.Colour.String()),
			UCI:       r.String(),
			From:      r.From.String(),
			To:        r.To.String(),
			Piece:     pieceTypeName(r.Piece.Kind),
			Castle:    r.Castle,
			EnPassant: r.EnPassant,
		}
		if r.IsCapture() {
			jm.Captured = pieceTypeName(r.Captured)
		}
		if r.IsPromotion() {
			jm.Promotion = pieceTypeName(r.Promotion)
		}
		moves = append(moves, jm)
	}
	return moves
}

func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
