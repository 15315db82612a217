package http

import (
	"github.com/gin-gonic/gin"

	"voice-notes/pkg/response"
)

// Resolve godoc
// @Summary     Resolve a transcript
// @Description Interprets a transcript as a note mutation without writing anything.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Transcript"
// @Success     200  {object} resolveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/voice/commands/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cmd := h.uc.Resolve(ctx, req.toInput())
	response.OK(c, h.newResolveResp(cmd))
}

// CreateNote godoc
// @Summary     Write a transcript to a note
// @Description Resolves a transcript and writes it to a new note, or to recent_note_id when it adds to a list.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Transcript"
// @Success     200  {object} applyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Note storage unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/notes [POST]
func (h *handler) CreateNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Process(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newApplyResp(out))
}

// AppendToNote godoc
// @Summary     Append a transcript to a note
// @Description Resolves a transcript and appends it to the note in the path.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Note ID"
// @Param       body body processReq true "Transcript"
// @Success     200  {object} applyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Note storage unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/notes/{id} [POST]
func (h *handler) AppendToNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Process(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newApplyResp(out))
}
