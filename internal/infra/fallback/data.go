package fallback

import "legalsite/internal/domain/entity"

const (
	placeholderImage = "/placeholder.svg"
	memberImage      = "/man.png"
)

//nolint:gochecknoglobals
var services = []entity.Service{
	{
		ID:    1,
		Slug:  "corporate-legal-services",
		Title: entity.NewLocalizedText("Corporate Legal Services", "الخدمات القانونية للشركات"),
		Description: entity.NewLocalizedText(
			"<p>Our corporate legal services provide comprehensive support for businesses of all sizes. We offer expert advice on company formation, corporate governance, mergers and acquisitions, and regulatory compliance.</p><p>Our team of experienced attorneys will guide you through complex legal frameworks to ensure your business operates within the law while achieving its objectives.</p>",
			"",
		),
		Approach: entity.NewLocalizedText(
			"<p>Our approach to corporate legal matters is both strategic and practical. We begin with a thorough assessment of your business needs and objectives, then develop customized legal solutions that align with your goals.</p><p>We prioritize clear communication and proactive problem-solving to help you navigate legal challenges efficiently.</p>",
			"",
		),
		Image:         entity.NewMediaAsset(placeholderImage),
		ApproachImage: entity.NewMediaAsset(placeholderImage),
		Features: []entity.Feature{
			{
				Title:       entity.NewLocalizedText("Company Formation", ""),
				Description: entity.NewLocalizedText("<p>Assistance with all aspects of setting up a new business entity, including documentation, registration, and compliance with local regulations.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Corporate Governance", ""),
				Description: entity.NewLocalizedText("<p>Development and implementation of governance frameworks, board procedures, and compliance policies.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Mergers & Acquisitions", ""),
				Description: entity.NewLocalizedText("<p>Legal support throughout the M&A process, including due diligence, transaction structuring, and post-merger integration.</p>", ""),
			},
		},
	},
	{
		ID:    2,
		Slug:  "dispute-resolution",
		Title: entity.NewLocalizedText("Dispute Resolution", "حل النزاعات"),
		Description: entity.NewLocalizedText(
			"<p>Our dispute resolution services offer effective strategies for resolving conflicts across various domains. We specialize in litigation, arbitration, mediation, and negotiation to help clients achieve favorable outcomes.</p><p>Our goal is to resolve disputes efficiently while minimizing costs and disruption to your business or personal life.</p>",
			"",
		),
		Approach: entity.NewLocalizedText(
			"<p>We take a tailored approach to dispute resolution, first understanding the nature of the conflict and your objectives. Then we develop and implement the most appropriate strategy, whether that involves negotiation, mediation, arbitration, or litigation.</p><p>Throughout the process, we provide clear guidance and representation to protect your interests.</p>",
			"",
		),
		Image:         entity.NewMediaAsset(placeholderImage),
		ApproachImage: entity.NewMediaAsset(placeholderImage),
		Features: []entity.Feature{
			{
				Title:       entity.NewLocalizedText("Commercial Litigation", ""),
				Description: entity.NewLocalizedText("<p>Representation in business disputes, contract breaches, partnership conflicts, and other commercial matters.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Arbitration Services", ""),
				Description: entity.NewLocalizedText("<p>Expert representation in domestic and international arbitration proceedings across various industries.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Mediation Support", ""),
				Description: entity.NewLocalizedText("<p>Facilitation of mediated negotiations to reach mutually acceptable resolutions without lengthy court proceedings.</p>", ""),
			},
		},
	},
	{
		ID:    3,
		Slug:  "real-estate-law",
		Title: entity.NewLocalizedText("Real Estate Law", "قانون العقارات"),
		Description: entity.NewLocalizedText(
			"<p>Our real estate legal services cover all aspects of property transactions and management. From residential purchases to commercial developments, we provide comprehensive legal support to protect your property interests.</p><p>We handle everything from contract drafting and due diligence to dispute resolution and regulatory compliance.</p>",
			"",
		),
		Approach: entity.NewLocalizedText(
			"<p>Our approach to real estate law combines technical expertise with practical business understanding. We conduct thorough reviews of property documentation, identify potential issues, and develop strategies to mitigate risks.</p><p>We ensure all transactions are structured appropriately and comply with relevant regulations and zoning requirements.</p>",
			"",
		),
		Image:         entity.NewMediaAsset(placeholderImage),
		ApproachImage: entity.NewMediaAsset(placeholderImage),
		Features: []entity.Feature{
			{
				Title:       entity.NewLocalizedText("Property Transactions", ""),
				Description: entity.NewLocalizedText("<p>Legal support for buying, selling, and leasing residential and commercial properties, including contract review and negotiation.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Development Projects", ""),
				Description: entity.NewLocalizedText("<p>Comprehensive legal services for construction and development projects, including permits, contracts, and compliance.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Property Dispute Resolution", ""),
				Description: entity.NewLocalizedText("<p>Representation in boundary disputes, title issues, landlord-tenant conflicts, and other property-related disputes.</p>", ""),
			},
		},
	},
	{
		ID:    4,
		Slug:  "employment-law",
		Title: entity.NewLocalizedText("Employment Law", "قانون العمل"),
		Description: entity.NewLocalizedText(
			"<p>Our employment law services provide guidance to both employers and employees on workplace legal matters. We help navigate the complex landscape of employment regulations, rights, and obligations.</p><p>From contract drafting to dispute resolution, we offer practical advice to protect your interests in employment relationships.</p>",
			"",
		),
		Approach: entity.NewLocalizedText(
			"<p>We take a balanced approach to employment law, recognizing the importance of maintaining productive working relationships while protecting legal rights. We focus on preventive strategies to avoid disputes, but also provide strong representation when conflicts arise.</p><p>Our team stays current with evolving employment regulations to ensure our advice reflects the latest legal developments.</p>",
			"",
		),
		Image:         entity.NewMediaAsset(placeholderImage),
		ApproachImage: entity.NewMediaAsset(placeholderImage),
		Features: []entity.Feature{
			{
				Title:       entity.NewLocalizedText("Employment Contracts", ""),
				Description: entity.NewLocalizedText("<p>Drafting, reviewing, and negotiating employment agreements, confidentiality clauses, and non-compete agreements.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Workplace Policies", ""),
				Description: entity.NewLocalizedText("<p>Development of employee handbooks, workplace policies, and compliance procedures aligned with current regulations.</p>", ""),
			},
			{
				Title:       entity.NewLocalizedText("Dispute Resolution", ""),
				Description: entity.NewLocalizedText("<p>Representation in employment disputes, discrimination claims, wrongful termination cases, and severance negotiations.</p>", ""),
			},
		},
	},
}

//nolint:gochecknoglobals
var team = []entity.TeamMember{
	{
		ID:    1,
		Name:  "Hamza Naveed",
		Role:  "Software Engineer",
		Image: entity.NewMediaAsset(memberImage),
		Social: entity.Social{
			Email:    "hamza@example.com",
			Phone:    "03111234567",
			WhatsApp: "03111234567",
		},
	},
	{
		ID:    2,
		Name:  "Ayesha Khan",
		Role:  "Legal Advisor",
		Image: entity.NewMediaAsset(memberImage),
		Social: entity.Social{
			Email:    "ayesha@example.com",
			Phone:    "03001234567",
			WhatsApp: "03001234567",
		},
	},
	{
		ID:    3,
		Name:  "George",
		Role:  "Legal Advisor",
		Image: entity.NewMediaAsset(memberImage),
		Social: entity.Social{
			Email:    "ayesha@example.com",
			Phone:    "03001234567",
			WhatsApp: "03001234567",
		},
	},
	{
		ID:    4,
		Name:  "Martin",
		Role:  "Legal Advisor",
		Image: entity.NewMediaAsset(memberImage),
		Social: entity.Social{
			Email:    "ayesha@example.com",
			Phone:    "03001234567",
			WhatsApp: "03001234567",
		},
	},
}

//nolint:gochecknoglobals
var heroSlides = []entity.HeroSlide{
	{
		ID:          1,
		Title:       entity.NewLocalizedText("Your Success, Our Commitment", "نجاحك، التزامنا"),
		Description: entity.NewLocalizedText("Watch how we make legal excellence a reality.", "شاهد كيف نجعل التميز القانوني حقيقة."),
		Image:       entity.NewMediaAsset("/hero-image.jpg"),
		Kind:        entity.SlideKindImage,
	},
	{
		ID:          2,
		Title:       entity.NewLocalizedText("Your Justice, Our Priority", "عدالتك، أولويتنا"),
		Description: entity.NewLocalizedText("Expert legal guidance tailored to your needs.", "إرشاد قانوني متخصص مصمم لاحتياجاتك."),
		VideoURL:    "https://videos.pexels.com/video-files/2424117/2424117-sd_640_360_30fps.mp4",
		Kind:        entity.SlideKindVideo,
	},
}

const testimonialEN = "With the help of the hospitable staff of Al Safar and Partners I was able to get my work done without any hassle. The help I received helped me a great deal to overcome the issues that I faced. I was always updated about my case and my queries never went unanswered."

const testimonialAR = "بمساعدة الفريق المضياف في الصفار وشركاه، تمكنت من إنجاز عملي دون أي متاعب. المساعدة التي تلقيتها ساعدتني كثيرًا في التغلب على المشكلات التي واجهتها. كنت دائمًا على اطلاع بحالة قضيتي ولم تبق استفساراتي أبدًا دون إجابة."

//nolint:gochecknoglobals
var testimonials = []entity.ClientTestimonial{
	{
		ID:          1,
		Name:        entity.NewLocalizedText("Mohammed Saif", "محمد سيف"),
		Position:    entity.NewLocalizedText("CEO/Company", "الرئيس التنفيذي/الشركة"),
		Image:       entity.NewMediaAsset(memberImage),
		Testimonial: entity.NewLocalizedText(testimonialEN, testimonialAR),
	},
	{
		ID:          2,
		Name:        entity.NewLocalizedText("Mohammed Hamza", "محمد حمزة"),
		Position:    entity.NewLocalizedText("CEO/Company", "الرئيس التنفيذي/الشركة"),
		Image:       entity.NewMediaAsset(memberImage),
		Testimonial: entity.NewLocalizedText(testimonialEN, testimonialAR),
	},
}
