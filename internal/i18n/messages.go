package i18n

var english = map[string]string{
	"checkout.cart_empty":               "Your cart is empty",
	"checkout.address_required":         "Please select a delivery address",
	"checkout.delivery_option_required": "Please select a delivery option",
	"checkout.time_slot_required":       "Please select a delivery time slot",
	"checkout.no_previous_step":         "There is no previous step",
	"checkout.place_order_required":     "Place the order to continue",
	"checkout.not_at_payment":           "Complete the delivery details first",
	"checkout.completed":                "This order has already been placed",
	"checkout.not_found":                "Checkout session not found",

	"order.status.pending":          "Pending",
	"order.status.confirmed":        "Confirmed",
	"order.status.preparing":        "Preparing",
	"order.status.out_for_delivery": "Out for delivery",
	"order.status.delivered":        "Delivered",
	"order.status.cancelled":        "Cancelled",

	"error.order_not_found":           "Order not found",
	"error.address_not_found":         "Address not found",
	"error.delivery_option_not_found": "Delivery option not found",
	"error.product_not_found":         "Product not found",
	"error.time_slot_unavailable":     "This time slot is no longer available",
	"error.invalid_status":            "Invalid order status",
	"error.internal":                  "Internal server error",
}

var arabic = map[string]string{
	"checkout.cart_empty":               "سلة التسوق فارغة",
	"checkout.address_required":         "يرجى اختيار عنوان التوصيل",
	"checkout.delivery_option_required": "يرجى اختيار طريقة التوصيل",
	"checkout.time_slot_required":       "يرجى اختيار موعد التوصيل",
	"checkout.no_previous_step":         "لا توجد خطوة سابقة",
	"checkout.place_order_required":     "يرجى تأكيد الطلب للمتابعة",
	"checkout.not_at_payment":           "أكمل بيانات التوصيل أولاً",
	"checkout.completed":                "تم تأكيد هذا الطلب مسبقاً",
	"checkout.not_found":                "جلسة الدفع غير موجودة",

	"order.status.pending":          "قيد الانتظار",
	"order.status.confirmed":        "تم التأكيد",
	"order.status.preparing":        "قيد التحضير",
	"order.status.out_for_delivery": "في الطريق إليك",
	"order.status.delivered":        "تم التوصيل",
	"order.status.cancelled":        "ملغي",

	"error.order_not_found":           "الطلب غير موجود",
	"error.address_not_found":         "العنوان غير موجود",
	"error.delivery_option_not_found": "طريقة التوصيل غير موجودة",
	"error.product_not_found":         "المنتج غير موجود",
	"error.time_slot_unavailable":     "هذا الموعد لم يعد متاحاً",
	"error.invalid_status":            "حالة الطلب غير صالحة",
	"error.internal":                  "خطأ داخلي في الخادم",
}
