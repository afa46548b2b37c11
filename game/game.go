package game

import (
	"fmt"
	"time"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"
	"the-snake/ui"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Outcome is what a single Step did to the board.
type Outcome int

const (
	Moved Outcome = iota
	Ate
	Reset
)

func (o Outcome) String() string {
	switch o {
	case Ate:
		return "ate"
	case Reset:
		return "reset"
	default:
		return "moved"
	}
}

type Game struct {
	Grid  types.Grid
	Stats *GameStats

	snake      *entity.Snake
	food       *entity.Food
	collisions *manager.CollisionManager
	foods      *manager.FoodManager
	rng        *rand.Rand
	log        zerolog.Logger
	now        func() time.Time

	runStart time.Time
	eaten    int
}

// NewGame puts a single-segment snake heading right at the board center and
// places the first food anywhere else.
func NewGame(grid types.Grid, rng *rand.Rand, log zerolog.Logger) *Game {
	g := &Game{
		Grid:       grid,
		Stats:      NewGameStats(),
		snake:      entity.NewSnake(grid.Center()),
		collisions: manager.NewCollisionManager(grid),
		foods:      manager.NewFoodManager(grid, rng),
		rng:        rng,
		log:        log,
		now:        time.Now,
	}
	g.runStart = g.now()

	pos, _ := g.foods.Relocate(g.snake.Positions)
	g.food = entity.NewFood(pos)

	return g
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food.Position
}

// Steer forwards a turn request to the snake's pending slot.
func (g *Game) Steer(dir types.Direction) {
	g.snake.Steer(dir)
}

// Step advances the game by one frame: commit the buffered turn, move one
// cell with wrap-around, eat, then check the moved body for a self bite.
func (g *Game) Step() Outcome {
	g.snake.UpdateDirection()
	newHead := g.collisions.NextHead(g.snake.GetHead(), g.snake.Direction)
	g.snake.Move(newHead)

	outcome := Moved
	if g.collisions.IsFoodCollision(g.snake.GetHead(), g.food.Position) {
		g.snake.Grow()
		g.eaten++
		g.relocateFood()
		outcome = Ate
		g.log.Debug().
			Int("length", g.snake.Length).
			Interface("food", g.food.Position).
			Msg("food eaten")
	}

	if g.collisions.IsSelfCollision(g.snake.Positions) {
		g.reset()
		return Reset
	}
	return outcome
}

func (g *Game) relocateFood() {
	pos, ok := g.foods.Relocate(g.snake.Positions)
	if !ok {
		g.log.Warn().Int("length", len(g.snake.Positions)).Msg("board is full, food stays put")
		return
	}
	g.food.Position = pos
}

func (g *Game) reset() {
	length := g.snake.Length
	g.endRun()

	dir := types.Directions[g.rng.Intn(len(types.Directions))]
	g.snake.Reset(g.Grid.Center(), dir)
	if g.snake.Occupies(g.food.Position) {
		g.relocateFood()
	}

	g.log.Info().
		Int("length", length).
		Str("direction", dir.String()).
		Int("runs", g.Stats.GetRunsPlayed()).
		Msg("snake bit itself, starting over")
}

// endRun closes the current life in the session stats and opens a new one.
func (g *Game) endRun() {
	end := g.now()
	g.Stats.AddRun(g.snake.Length, g.eaten, g.runStart, end)
	g.runStart = end
	g.eaten = 0
}

// Draw paints the vacated tail cell with the background before the
// snake and food, so a head entering that cell is not erased.
func (g *Game) Draw(s ui.Surface) {
	if g.snake.Last != nil {
		s.DrawCell(*g.snake.Last, types.BackgroundColor)
	}
	for _, d := range []entity.Drawable{g.snake, g.food} {
		color := d.Kind().Color()
		for _, p := range d.Cells() {
			s.DrawCell(p, color)
		}
	}
}

// Caption is the status line shown by the surface.
func (g *Game) Caption() string {
	best := g.Stats.GetMaxLength()
	if g.snake.Length > best {
		best = g.snake.Length
	}
	return fmt.Sprintf("Snake | arrows to steer | Length: %d | Best: %d | Runs: %d",
		g.snake.Length, best, g.Stats.GetRunsPlayed())
}
