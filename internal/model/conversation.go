package model

// ProductsNodeRef is the option target that resolves to the dynamic products
// node synthesized from the Product catalog instead of a stored row.
const ProductsNodeRef = "products"

// ConversationNode is one question in the scripted chatbot graph. Options is
// an ordered list; traversal is client-driven and stateless. At most one node
// has IsInitial set (enforced by the seeder, not a constraint).
type ConversationNode struct {
	Base
	Question   string     `json:"question" gorm:"type:text;not null"`
	Options    OptionList `json:"options" gorm:"not null"`
	IsActive   bool       `json:"isActive" gorm:"column:is_active;default:true;index"`
	IsInitial  bool       `json:"isInitial" gorm:"column:is_initial;default:false;index"`
	OrderIndex int        `json:"orderIndex" gorm:"column:order_index;default:0;index"`
}

// IDPrefix returns the prefix used for generated ids (conv001, conv002...)
func (ConversationNode) IDPrefix() string { return "conv" }
