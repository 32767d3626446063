package dto

type CreatePuzzleInput struct {
	Word string `json:"word"`
}

type CreatePuzzleResponse struct {
	PuzzleID string `json:"puzzleId"`
	ShareURL string `json:"shareUrl"`
}
