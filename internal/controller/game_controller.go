// Package controller maps HTTP requests onto the game service.
package controller

import (
	"bytes"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/service"
)

// GameController serves the /api/games routes.
type GameController struct {
	gameService *service.GameService
	log         log.Interface
}

// NewGameController creates a controller. A nil logger discards.
func NewGameController(gameService *service.GameService, logger log.Interface) *GameController {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameController{gameService: gameService, log: logger}
}

// Register mounts the routes on router.
func (gc *GameController) Register(router fiber.Router) {
	games := router.Group("/games")
	games.Get("/", gc.ListGames)
	games.Post("/", gc.CreateGame)
	games.Get("/:gameId", gc.GetGameState)
	games.Delete("/:gameId", gc.DeleteGame)
	games.Get("/:gameId/moves", gc.LegalMoves)
	games.Get("/:gameId/moves/:uci", gc.IsLegal)
	games.Post("/:gameId/moves", gc.MakeMove)
	games.Post("/:gameId/undo", gc.UndoMove)
	games.Get("/:gameId/check", gc.InCheck)
	games.Get("/:gameId/board.svg", gc.RenderSVG)
}

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	state, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": gc.gameService.Manager().ListGames()})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.Manager().DeleteGame(c.Params("gameId")); err != nil {
		return gc.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), c.Query("from"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{"moves": moves})
}

func (gc *GameController) IsLegal(c *fiber.Ctx) error {
	uci := c.Params("uci")
	legal, err := gc.gameService.IsLegal(c.Params("gameId"), uci)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{"move": uci, "legal": legal})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil || req.Move == "" {
		return fiber.NewError(fiber.StatusBadRequest, "body must be {\"move\": \"e2e4\"}")
	}

	move, err := gc.gameService.MakeMove(c.Params("gameId"), req.Move)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(move)
}

func (gc *GameController) UndoMove(c *fiber.Ctx) error {
	move, err := gc.gameService.UndoMove(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(move)
}

func (gc *GameController) InCheck(c *fiber.Ctx) error {
	inCheck, err := gc.gameService.InCheck(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{"inCheck": inCheck})
}

func (gc *GameController) RenderSVG(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := gc.gameService.RenderSVG(c.Params("gameId"), c.Query("from"), &buf); err != nil {
		return gc.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

// fail maps service errors onto HTTP statuses.
func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	entry := gc.log.WithError(err).WithField("path", c.Path())
	if status >= fiber.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor returns the HTTP status for a service error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrIllegalMove), errors.Is(err, errors.ErrNoPiece):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrEmptyHistory):
		return fiber.StatusConflict
	case errors.Is(err, errors.ErrInvalidFEN), errors.Is(err, errors.ErrInvalidSquare),
		errors.Is(err, errors.ErrKingNotFound), errors.Is(err, errors.ErrMultipleKings):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler renders fiber errors as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
