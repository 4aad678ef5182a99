package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// nodeRef is the resolved target of a question lookup: either a stored node
// addressed by id, or the dynamic products node synthesized from the catalog.
type nodeRef struct {
	dynamic bool
	id      string
}

func parseNodeRef(raw string) nodeRef {
	if raw == model.ProductsNodeRef {
		return nodeRef{dynamic: true}
	}
	return nodeRef{id: raw}
}

// GetInitialQuestion returns the unique active entry question of the chatbot.
func GetInitialQuestion(c echo.Context) error {
	var node model.ConversationNode
	err := database.GetDB().
		Where("is_initial = ? AND is_active = ?", true, true).
		Order("order_index ASC").
		First(&node).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Initial question not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to fetch initial question")
	}

	return OK(c, http.StatusOK, node, "Initial question fetched successfully")
}

// GetQuestionByID returns one node. The id "products" never reads the
// conversation table; it synthesizes a node from the active product catalog.
func GetQuestionByID(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	ref := parseNodeRef(id)
	if ref.dynamic {
		node, err := productsNode()
		if err != nil {
			return NewAPIError(http.StatusInternalServerError, "Failed to build products question")
		}
		return OK(c, http.StatusOK, node, "Products question fetched successfully")
	}

	var node model.ConversationNode
	err := database.GetDB().First(&node, "id = ?", ref.id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Question not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to fetch question")
	}

	return OK(c, http.StatusOK, node, "Question fetched successfully")
}

// productsNodeOrder slots the synthesized node after the four seeded static
// nodes (conv001-conv004, order 1-4).
const productsNodeOrder = 5

// productsNode builds the dynamic node from active products ordered by their
// display order. With an empty catalog it carries a single terminal option.
func productsNode() (*model.ConversationNode, error) {
	var products []model.Product
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("order_index ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	node := &model.ConversationNode{
		Base:       model.Base{ID: model.ProductsNodeRef},
		IsActive:   true,
		IsInitial:  false,
		OrderIndex: productsNodeOrder,
	}

	if len(products) == 0 {
		node.Question = "Our Products"
		node.Options = model.OptionList{
			{
				Option:         "No products available",
				Answer:         "We are currently working on exciting new products. Please check back soon!",
				NextQuestionID: nil,
			},
		}
		return node, nil
	}

	node.Question = "Which product would you like to know more about?"
	options := make(model.OptionList, 0, len(products))
	for _, p := range products {
		answer := p.Description
		if len(p.Features) > 0 {
			var b strings.Builder
			b.WriteString(answer)
			b.WriteString("\n\nKey Features:\n")
			for i, f := range p.Features {
				if i > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "• %s", f)
			}
			answer = b.String()
		}
		answer = fmt.Sprintf("%s\n\n🔗 Explore: %s", answer, p.URL)
		options = append(options, model.Option{
			Option:         p.Name,
			Answer:         answer,
			NextQuestionID: nil,
		})
	}
	node.Options = options
	return node, nil
}

// GetAllQuestions lists active nodes for the public chatbot.
func GetAllQuestions(c echo.Context) error {
	var nodes []model.ConversationNode
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("order_index ASC, created_at ASC").
		Find(&nodes).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to fetch questions")
	}
	return OK(c, http.StatusOK, nodes, "All questions fetched successfully")
}

// GetAllQuestionsAdmin lists every node including inactive ones.
func GetAllQuestionsAdmin(c echo.Context) error {
	var nodes []model.ConversationNode
	err := database.GetDB().
		Order("order_index ASC, created_at ASC").
		Find(&nodes).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to fetch questions")
	}
	return OK(c, http.StatusOK, nodes, "All questions fetched successfully for admin")
}

// QuestionRequest is the create/update payload for a conversation node.
type QuestionRequest struct {
	Question   string         `json:"question"`
	Options    []model.Option `json:"options"`
	IsActive   *bool          `json:"isActive"`
	IsInitial  *bool          `json:"isInitial"`
	OrderIndex *int           `json:"orderIndex"`
}

func (r *QuestionRequest) validate() fieldErrors {
	var errs fieldErrors
	checkRequired(&errs, r.Question, "Question")
	checkMaxLen(&errs, r.Question, "Question", 1000)
	if len(r.Options) == 0 {
		errs.add("Options must have at least 1 items")
	}
	for i, opt := range r.Options {
		if strings.TrimSpace(opt.Option) == "" {
			errs.add("Option at index %d must have a valid 'option' string", i)
		}
		if strings.TrimSpace(opt.Answer) == "" {
			errs.add("Option at index %d must have a valid 'answer' string", i)
		}
		checkMaxLen(&errs, opt.Option, fmt.Sprintf("Option %d option", i), 255)
		checkMaxLen(&errs, opt.Answer, fmt.Sprintf("Option %d answer", i), 2000)
		if opt.NextQuestionID != nil {
			checkMaxLen(&errs, *opt.NextQuestionID, fmt.Sprintf("Option %d nextQuestionId", i), 255)
		}
	}
	if r.OrderIndex != nil {
		checkNonNegative(&errs, *r.OrderIndex, "Order Index")
	}
	return errs
}

func (r *QuestionRequest) trimmedOptions() model.OptionList {
	out := make(model.OptionList, 0, len(r.Options))
	for _, opt := range r.Options {
		var next *string
		if opt.NextQuestionID != nil {
			trimmed := strings.TrimSpace(*opt.NextQuestionID)
			if trimmed != "" {
				next = &trimmed
			}
		}
		out = append(out, model.Option{
			Option:         strings.TrimSpace(opt.Option),
			Answer:         strings.TrimSpace(opt.Answer),
			NextQuestionID: next,
		})
	}
	return out
}

// CreateQuestion creates a conversation node with a generated id.
func CreateQuestion(c echo.Context) error {
	log := logger.FromEcho(c)

	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}
	if errs := req.validate(); !errs.ok() {
		return ErrValidation(errs)
	}

	node := model.ConversationNode{
		Question:  strings.TrimSpace(req.Question),
		Options:   req.trimmedOptions(),
		IsActive:  true,
		IsInitial: false,
	}
	if req.IsActive != nil {
		node.IsActive = *req.IsActive
	}
	if req.IsInitial != nil {
		node.IsInitial = *req.IsInitial
	}
	if req.OrderIndex != nil {
		node.OrderIndex = *req.OrderIndex
	}

	if err := seqid.Create(database.GetDB(), &node); err != nil {
		log.Error("Failed to create question", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to create question")
	}

	log.Info("Question created", zap.String("id", node.ID))
	return OK(c, http.StatusCreated, node, "Question created successfully")
}

// UpdateQuestion replaces a node's content. The options array is replaced
// wholesale, never merged with the stored one.
func UpdateQuestion(c echo.Context) error {
	log := logger.FromEcho(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}
	if errs := req.validate(); !errs.ok() {
		return ErrValidation(errs)
	}

	var node model.ConversationNode
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&node, "id = ?", id).Error; err != nil {
			return err
		}
		node.Question = strings.TrimSpace(req.Question)
		node.Options = req.trimmedOptions()
		if req.IsActive != nil {
			node.IsActive = *req.IsActive
		}
		if req.IsInitial != nil {
			node.IsInitial = *req.IsInitial
		}
		if req.OrderIndex != nil {
			node.OrderIndex = *req.OrderIndex
		}
		return tx.Save(&node).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Question not found")
	}
	if err != nil {
		log.Error("Failed to update question", zap.String("id", id), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to update question")
	}

	log.Info("Question updated", zap.String("id", node.ID))
	return OK(c, http.StatusOK, node, "Question updated successfully")
}

// DeleteQuestion removes a node permanently.
func DeleteQuestion(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.ConversationNode{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete question")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Question not found")
	}

	return OK(c, http.StatusOK, nil, "Question deleted successfully")
}
