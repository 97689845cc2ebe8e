// Package colorific is a tile-matching puzzle game core: a square grid of
// colored tokens where the player clears contiguous same-color groups for
// points while gravity refills the board.
//
// The package has no graphics backend. Everything draws through the
// [Surface] interface, and hosts drive it with three calls per frame:
//
//	director.Update(dt)          // logic, dt in seconds
//	director.Draw(surface, dt)   // rendering
//	director.Click(x, y)         // whenever the pointer is pressed
//
// Ready-made hosts live in sub-packages: ebitenhost renders into an
// Ebitengine window and terminal renders with tcell.
//
// # Board
//
// A [Board] starts in [PhaseSettling] with every cell spawned above the
// visible area. When no cell is falling in a tick, the board draws a
// multiplier color and a distinct divider color and moves to
// [PhaseAwaitingInput]. A click flood-fills the group under the pointer,
// scores it as 1+2+...+k scaled by the bonus colors (doubled again when the
// group was every remaining cell of its color), removes the group, collapses
// the columns and refills from above. When no turns are left the board moves
// to [PhaseFinished].
//
//	b := colorific.NewBoard(colorific.DefaultBoardConfig(), 0)
//	b.OnTurn = func(r colorific.TurnResult) { fmt.Println(r.Score) }
//
// # Screens
//
// [Director] owns the active [Screen]: [MenuScreen], [GameScreen],
// [GameOverScreen] or [PauseScreen]. Screens switch by returning the next
// screen from Tick or Click.
//
// # Effects
//
// Explosions and score popups are entities in an [EntityManager], which
// stages additions, removes dead entities and renders by layer. Their
// animation curves use [gween].
//
// [gween]: https://github.com/tanema/gween
package colorific
