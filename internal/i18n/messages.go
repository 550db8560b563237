package i18n

import "github.com/attarah-next/internal/constants"

var bundles = map[string]map[string]string{
	constants.LocaleEn: {
		"error.bad_request":              "Invalid request",
		"error.unauthorized":             "Please sign in first",
		"error.auth_header_missing":      "Authorization header is missing",
		"error.auth_header_invalid":      "Authorization header is malformed",
		"error.token_invalid":            "Invalid or expired token",
		"error.token_revoked":            "Token has been revoked",
		"error.jwt_secret_missing":       "Server authentication is not configured",
		"error.login_too_many":           "Too many login attempts, please retry in %d seconds",
		"error.user_id_invalid":          "Invalid user identity",
		"error.user_id_type_invalid":     "Unexpected user identity type",
		"error.not_found":                "Not found",
		"error.internal":                 "Server error, please try again later",
		"error.too_many_requests":        "Too many requests, please slow down",
		"error.rate_limited":             "Too many attempts, please retry in %d seconds",
		"error.rate_limit_unavailable":   "Service is busy, please try again later",
		"error.search_failed":            "Product search failed, please try again later",
		"error.product_not_found":        "Product not found",
		"error.category_fetch_failed":    "Failed to load categories",
		"error.state_fetch_failed":       "Failed to load regions",
		"error.validation_failed":        "Please check the submitted fields",
		"error.email_invalid":            "Invalid email address",
		"error.email_exists":             "Email is already registered",
		"error.password_required":        "Password and confirmation are required",
		"error.password_mismatch":        "Passwords do not match",
		"error.invalid_credentials":      "Incorrect email or password",
		"error.register_failed":          "Registration failed, please try again later",
		"error.login_failed":             "Login failed, please try again later",
		"error.cart_empty":               "Your cart is empty",
		"error.cart_item_invalid":        "Invalid cart item",
		"error.cart_update_failed":       "Failed to update cart",
		"error.product_not_available":    "Product is not available",
		"error.address_required":         "Shipping address is required",
		"error.address_not_found":        "Address not found",
		"error.address_create_failed":    "Failed to save address",
		"error.state_required":           "Please choose a valid emirate",
		"error.provision_timeout":        "Account setup timed out, please try again",
		"error.partial_order_failure":    "Order was created but its items could not be saved, please contact support",
		"error.checkout_failed":          "Checkout failed, please try again later",
		"error.order_not_found":          "Order not found",
		"error.order_fetch_failed":       "Failed to load orders",
	},
	constants.LocaleAr: {
		"error.bad_request":              "طلب غير صالح",
		"error.unauthorized":             "يرجى تسجيل الدخول أولاً",
		"error.auth_header_missing":      "ترويسة التفويض مفقودة",
		"error.auth_header_invalid":      "ترويسة التفويض غير صالحة",
		"error.token_invalid":            "رمز غير صالح أو منتهي الصلاحية",
		"error.token_revoked":            "تم إبطال الرمز",
		"error.jwt_secret_missing":       "مصادقة الخادم غير مهيأة",
		"error.login_too_many":           "محاولات تسجيل دخول كثيرة، يرجى المحاولة بعد %d ثانية",
		"error.user_id_invalid":          "هوية مستخدم غير صالحة",
		"error.user_id_type_invalid":     "نوع هوية مستخدم غير متوقع",
		"error.not_found":                "غير موجود",
		"error.internal":                 "خطأ في الخادم، يرجى المحاولة لاحقاً",
		"error.too_many_requests":        "طلبات كثيرة جداً، يرجى التمهل",
		"error.rate_limited":             "محاولات كثيرة جداً، يرجى المحاولة بعد %d ثانية",
		"error.rate_limit_unavailable":   "الخدمة مشغولة، يرجى المحاولة لاحقاً",
		"error.search_failed":            "فشل البحث عن المنتجات، يرجى المحاولة لاحقاً",
		"error.product_not_found":        "المنتج غير موجود",
		"error.category_fetch_failed":    "تعذر تحميل الفئات",
		"error.state_fetch_failed":       "تعذر تحميل المناطق",
		"error.validation_failed":        "يرجى التحقق من الحقول المدخلة",
		"error.email_invalid":            "بريد إلكتروني غير صالح",
		"error.email_exists":             "البريد الإلكتروني مسجل مسبقاً",
		"error.password_required":        "كلمة المرور وتأكيدها مطلوبان",
		"error.password_mismatch":        "كلمتا المرور غير متطابقتين",
		"error.invalid_credentials":      "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"error.register_failed":          "فشل التسجيل، يرجى المحاولة لاحقاً",
		"error.login_failed":             "فشل تسجيل الدخول، يرجى المحاولة لاحقاً",
		"error.cart_empty":               "سلة التسوق فارغة",
		"error.cart_item_invalid":        "عنصر سلة غير صالح",
		"error.cart_update_failed":       "تعذر تحديث السلة",
		"error.product_not_available":    "المنتج غير متوفر",
		"error.address_required":         "عنوان الشحن مطلوب",
		"error.address_not_found":        "العنوان غير موجود",
		"error.address_create_failed":    "تعذر حفظ العنوان",
		"error.state_required":           "يرجى اختيار إمارة صالحة",
		"error.provision_timeout":        "انتهت مهلة إعداد الحساب، يرجى المحاولة مرة أخرى",
		"error.partial_order_failure":    "تم إنشاء الطلب لكن تعذر حفظ عناصره، يرجى التواصل مع الدعم",
		"error.checkout_failed":          "فشل إتمام الطلب، يرجى المحاولة لاحقاً",
		"error.order_not_found":          "الطلب غير موجود",
		"error.order_fetch_failed":       "تعذر تحميل الطلبات",
	},
}
