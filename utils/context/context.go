package context

import (
	"context"

	"github.com/mahmudhasan/clothing-shop/constant"
)

func GetAdminID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AdminIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
