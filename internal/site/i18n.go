package site

// Static page strings, English and Arabic. The project records carry their
// own translations; everything else on the page comes from here.
var translations = map[string]map[string]string{
	"en": {
		"nav_home":         "Home",
		"nav_projects":     "Projects",
		"nav_about":        "About",
		"lang_toggle":      "العربية",
		"hero_name":        "Ahmed Elrefaey",
		"hero_subtitle":    "Frontend Developer & Computer and Communications Engineer",
		"hero_text":        "A passionate frontend developer with experience in HTML, CSS, and JavaScript. I've worked on several real-world projects like accessory e-commerce sites and a photography landing page.",
		"hero_cta":         "View My Work",
		"projects_title":   "My Projects",
		"project_link":     "View Live Site",
		"about_title":      "About Me",
		"about_text":       "I'm a Computer and Communications Engineer studying at Mansoura University with a passion for creating beautiful and functional web experiences. My expertise lies in frontend development, where I combine technical skills with creative design to build engaging user interfaces.",
		"skill_design":     "Responsive Design",
		"skill_ecommerce":  "E-commerce",
		"footer":           "2024 Ahmed Elrefaey. All rights reserved.",
		"admin_access":     "Admin Access",
		"admin_password":   "Password",
		"admin_login":      "Login",
		"admin_error":      "Incorrect password",
		"admin_title":      "Admin Panel - Project Management",
		"admin_close":      "Close Panel",
		"admin_add":        "Add New Project",
		"admin_edit":       "Edit Project",
		"admin_save":       "Save",
		"admin_cancel":     "Cancel",
		"admin_delete":     "Are you sure you want to delete this project?",
		"admin_order":      "Order:",
		"admin_status":     "Status:",
		"admin_active":     "Active",
		"admin_inactive":   "Inactive",
		"admin_activate":   "Activate",
		"admin_deactivate": "Deactivate",
		"admin_loading":    "Loading projects...",
	},
	"ar": {
		"nav_home":         "الرئيسية",
		"nav_projects":     "المشاريع",
		"nav_about":        "نبذة",
		"lang_toggle":      "English",
		"hero_name":        "أحمد الرفاعي",
		"hero_subtitle":    "مطور واجهات أمامية ومهندس حاسوب واتصالات",
		"hero_text":        "مطور واجهات أمامية شغوف بخبرة في HTML و CSS و JavaScript. عملت على عدة مشاريع حقيقية مثل مواقع التجارة الإلكترونية للإكسسوارات وصفحة هبوط للتصوير الفوتوغرافي.",
		"hero_cta":         "اطلع على أعمالي",
		"projects_title":   "مشاريعي",
		"project_link":     "عرض الموقع المباشر",
		"about_title":      "نبذة عني",
		"about_text":       "أنا مهندس حاسوب واتصالات أدرس في جامعة المنصورة مع شغف لإنشاء تجارب ويب جميلة وعملية. خبرتي تكمن في تطوير الواجهات الأمامية، حيث أجمع بين المهارات التقنية والتصميم الإبداعي لبناء واجهات مستخدم جذابة.",
		"skill_design":     "التصميم المتجاوب",
		"skill_ecommerce":  "التجارة الإلكترونية",
		"footer":           "2024 أحمد الرفاعي. جميع الحقوق محفوظة.",
		"admin_access":     "دخول الإدارة",
		"admin_password":   "كلمة المرور",
		"admin_login":      "دخول",
		"admin_error":      "كلمة مرور خاطئة",
		"admin_title":      "لوحة الإدارة - إدارة المشاريع",
		"admin_close":      "إغلاق اللوحة",
		"admin_add":        "إضافة مشروع جديد",
		"admin_edit":       "تعديل المشروع",
		"admin_save":       "حفظ",
		"admin_cancel":     "إلغاء",
		"admin_delete":     "هل أنت متأكد من حذف هذا المشروع؟",
		"admin_order":      "الترتيب:",
		"admin_status":     "الحالة:",
		"admin_active":     "نشط",
		"admin_inactive":   "غير نشط",
		"admin_activate":   "تفعيل",
		"admin_deactivate": "إلغاء تفعيل",
		"admin_loading":    "جاري تحميل المشاريع...",
	},
}

// Strings returns the translation table for lang, falling back to English.
func Strings(lang string) map[string]string {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations["en"]
}
