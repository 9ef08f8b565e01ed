package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-aid/campus-aid-api/store"
)

// createQuestion posts a new question to the campus Q&A board
func (s *Server) createQuestion(c *gin.Context) {
	user := currentUser(c)

	var params store.QuestionParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	question, err := s.mongoStore.CreateQuestion(user, params)
	if err != nil {
		if err == store.ErrInvalidQuestion {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidQuestion, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (s *Server) listQuestions(c *gin.Context) {
	questions, err := s.mongoStore.ListQuestions()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) getQuestion(c *gin.Context) {
	question, err := s.mongoStore.GetQuestion(c.Param("questionID"))
	if err != nil {
		if err == store.ErrQuestionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorQuestionNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (s *Server) appendAnswer(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Body string `json:"body"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	answer, err := s.mongoStore.AppendAnswer(c.Param("questionID"), params.Body, user)
	if err != nil {
		switch err {
		case store.ErrQuestionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorQuestionNotFound, err)
		case store.ErrInvalidAnswer:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAnswer, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, answer)
}
