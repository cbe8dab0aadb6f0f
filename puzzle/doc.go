// Package puzzle implements the placement and line-clearing engine of a
// block-fitting puzzle played on a square grid.
//
// A Session owns a Board, a Tray of three pieces drawn from the shape
// catalog and a ScoreState. Collaborators turn pointer positions into
// anchor cells, call Preview while a piece is dragged and AttemptPlacement
// when it is dropped, then render the board and score.
package puzzle
