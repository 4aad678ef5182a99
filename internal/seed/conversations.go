package seed

import (
	"errors"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InitialNodeID is the fixed id of the chatbot's entry question.
const InitialNodeID = "conv001"

func ref(id string) *string { return &id }

// initialOptions is the canonical option list of the entry question. The
// patch rule rewrites stale rows to this list when the products option is
// missing.
func initialOptions() model.OptionList {
	return model.OptionList{
		{Option: "Our Services", Answer: "Great! We offer comprehensive technology services. What service interests you?", NextQuestionID: ref("conv002")},
		{Option: "Our Products", Answer: "Great! We have developed innovative products to solve real-world problems. Which product interests you?", NextQuestionID: ref(model.ProductsNodeRef)},
		{Option: "Internship Program", Answer: "Excellent choice! We offer amazing internship opportunities. What would you like to know?", NextQuestionID: ref("conv003")},
		{Option: "About codeEntra", Answer: "codeEntra is a leading technology solutions provider founded in 2025. What would you like to know?", NextQuestionID: ref("conv004")},
		{Option: "Contact Us", Answer: "You can reach us through our contact form on this page or email us directly. We would love to hear from you!", NextQuestionID: nil},
	}
}

func conversationSeeder() Seeder {
	defaults := []model.ConversationNode{
		{
			Base:       model.Base{ID: InitialNodeID},
			Question:   "Hello! I am codeEntra assistant. What would you like to know about?",
			Options:    initialOptions(),
			IsActive:   true,
			IsInitial:  true,
			OrderIndex: 1,
		},
		{
			Base:     model.Base{ID: "conv002"},
			Question: "Which service interests you?",
			Options: model.OptionList{
				{Option: "Web Development", Answer: "Our Web Development service includes custom websites and web applications built with the latest technologies to create powerful digital experiences tailored to your business needs.", NextQuestionID: nil},
				{Option: "DevOps Solutions", Answer: "DevOps Solutions include streamlined development workflows, CI/CD pipelines, and infrastructure automation to improve your delivery process and operational efficiency.", NextQuestionID: nil},
				{Option: "Cloud Services", Answer: "We provide expert cloud solutions for AWS, Azure, and GCP to help you scale your infrastructure efficiently and securely.", NextQuestionID: nil},
				{Option: "UX/UI Design", Answer: "UX/UI Design service focuses on user-centered design that creates intuitive, engaging, and accessible digital experiences that convert visitors to customers.", NextQuestionID: nil},
				{Option: "IT Consulting", Answer: "IT Consulting provides strategic technology consulting to help your business make the right decisions for sustainable growth and innovation.", NextQuestionID: nil},
				{Option: "Cybersecurity", Answer: "We offer comprehensive security solutions to protect your business from threats and ensure compliance with regulations.", NextQuestionID: nil},
			},
			IsActive:   true,
			IsInitial:  false,
			OrderIndex: 2,
		},
		{
			Base:     model.Base{ID: "conv003"},
			Question: "What would you like to know about our internship program?",
			Options: model.OptionList{
				{Option: "How to Apply", Answer: "You can apply for internships by visiting our Career section on the website. Fill out the internship application form with your details, skills, and preferences.", NextQuestionID: nil},
				{Option: "Program Duration", Answer: "Internship programs are available in various durations (typically 1-6 months) depending on the program. Check our Career section for specific duration options.", NextQuestionID: nil},
				{Option: "Benefits", Answer: "Interns receive continuous learning opportunities, mentorship from industry experts, real project experience, and the chance to build their professional network.", NextQuestionID: nil},
				{Option: "Requirements", Answer: "We look for passionate individuals with basic programming knowledge and eagerness to learn. Check our Career section for specific requirements.", NextQuestionID: nil},
			},
			IsActive:   true,
			IsInitial:  false,
			OrderIndex: 3,
		},
		{
			Base:     model.Base{ID: "conv004"},
			Question: "What would you like to know about codeEntra?",
			Options: model.OptionList{
				{Option: "Company Overview", Answer: "codeEntra is a leading technology solutions provider founded in 2025. We specialize in empowering businesses with innovative technology solutions that drive growth and success.", NextQuestionID: nil},
				{Option: "Our Mission", Answer: "We combine technical expertise with a deep understanding of business needs to deliver solutions that not only solve problems but create opportunities for our clients.", NextQuestionID: nil},
				{Option: "Our Team", Answer: "Our team of dedicated professionals is passionate about technology and committed to excellence in everything we do.", NextQuestionID: nil},
			},
			IsActive:   true,
			IsInitial:  false,
			OrderIndex: 4,
		},
	}

	return Seeder{
		Name: "conversations",
		Exists: func(db *gorm.DB) (bool, error) {
			return hasAny(db, &model.ConversationNode{})
		},
		Seed: func(tx *gorm.DB) error {
			for i := range defaults {
				if err := tx.Create(&defaults[i]).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// conversationProductsOptionPatch upgrades an initial question that predates
// the dynamic products node: when its options carry no "Our Products" entry
// the whole list is rewritten to the canonical one.
func conversationProductsOptionPatch() PatchRule {
	return PatchRule{
		Name: "conversation-products-option",
		Apply: func(db *gorm.DB) error {
			var node model.ConversationNode
			err := db.Where("is_initial = ?", true).First(&node).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			for _, opt := range node.Options {
				if opt.Option == "Our Products" {
					return nil
				}
			}

			node.Options = initialOptions()
			if err := db.Save(&node).Error; err != nil {
				return err
			}
			logger.GetLogger().Info("Patched initial question with products option",
				zap.String("id", node.ID))
			return nil
		},
	}
}
