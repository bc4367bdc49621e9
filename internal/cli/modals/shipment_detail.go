package modals

import (
	"context"
	"fmt"
	"time"

	"GeoConsole/internal/cli/api"
	"GeoConsole/internal/cli/model"
	"GeoConsole/internal/cli/query"
	"GeoConsole/internal/cli/shipments"
	"GeoConsole/internal/cli/toast"
)

// ShipmentDetail shows one shipment and offers the status-gated actions:
// download always, confirm only while READY, void only while SHIPPED.
// The gating is best-effort display logic; the server stays authoritative.
type ShipmentDetail struct {
	Modal
	ShipmentID  string
	DownloadDir string
	Shipments   *shipments.Service
	Cache       *query.Cache
	Toasts      *toast.Store
}

func (f *ShipmentDetail) Run(ctx context.Context) error {
	for {
		sh, err := query.Fetch(ctx, f.Cache, query.Key("shipment", f.ShipmentID),
			func(ctx context.Context) (model.Shipment, error) {
				return f.Shipments.Get(ctx, f.ShipmentID)
			})
		if err != nil {
			return err
		}
		f.render(sh)

		actions := "d=다운로드, e=증빙 텍스트 복사, s=SHA256 복사, q=닫기"
		switch sh.Status {
		case model.ShipmentReady:
			actions = "c=출고 확정, " + actions
		case model.ShipmentShipped:
			actions = "v=무효화, " + actions
		}

		switch f.prompt(actions + ": ") {
		case "q", "":
			return nil
		case "d":
			f.download(ctx, sh)
		case "e":
			f.printf("%s | SHA256: %s | %s | %s", sh.DisplayID, sh.ZipSHA256, koDateTime(sh.CreatedAt), seriesName(sh))
			f.Toasts.Show("복사 완료", toast.Success)
		case "s":
			f.printf("%s", sh.ZipSHA256)
			f.Toasts.Show("SHA256 복사됨", toast.Success)
		case "c":
			if sh.Status == model.ShipmentReady {
				f.confirm(ctx)
			}
		case "v":
			if sh.Status == model.ShipmentShipped {
				f.void(ctx)
			}
		}
	}
}

func (f *ShipmentDetail) render(sh model.Shipment) {
	f.printf("%s  [%s]", sh.DisplayID, statusLabel(sh.Status))
	f.printf("%s", sh.ShipmentID)
	f.printf("시리즈      %s", seriesName(sh))
	f.printf("자산 수     %d개", sh.AssetCount)
	f.printf("생성일시    %s", koDateTime(sh.CreatedAt))
	if sh.ShippedAt != nil {
		f.printf("출고 확정일시  %s", koDateTime(*sh.ShippedAt))
	}
	f.printf("ZIP SHA256  %s", sh.ZipSHA256)
	if sh.VoidReason != "" {
		f.printf("무효화 사유  %s", sh.VoidReason)
	}
	if len(sh.Assets) > 0 {
		f.printf("포함 자산 (%d개)", len(sh.Assets))
		for _, sa := range sh.Assets {
			f.printf("  %s  %s  %s...  %d", assetDinaID(sa), sa.FileName, shortHash(sa.FileSHA256), assetEdition(sa))
		}
	}
}

// confirm runs the nested confirmation dialog: the recipient email is
// entered fresh and validated locally before any network call.
func (f *ShipmentDetail) confirm(ctx context.Context) {
	f.printf("출고 확정 — 수신자 이메일로 다운로드 링크가 발송됩니다.")
	email := f.prompt("수신자 이메일: ")
	if email == "" {
		f.printf("수신자 이메일을 입력하세요")
		return
	}
	if !ValidEmail(email) {
		f.printf("유효한 이메일 주소를 입력하세요")
		return
	}

	emailSent, err := f.Shipments.Confirm(ctx, f.ShipmentID, email)
	if err != nil {
		f.Toasts.Show(api.ErrorMessage(err, "출고 확정 실패"), toast.Error)
		return
	}
	f.Cache.Invalidate(query.Key("shipments"), query.Key("shipment", f.ShipmentID))
	if emailSent {
		f.Toasts.Show("출고 확정 완료. 이메일이 발송되었습니다.", toast.Success)
	} else {
		f.Toasts.Show("출고 확정 완료. (이메일 발송 실패)", toast.Info)
	}
}

func (f *ShipmentDetail) void(ctx context.Context) {
	reason := f.prompt("무효화 사유를 입력하세요: ")
	if reason == "" {
		return
	}
	if err := f.Shipments.Void(ctx, f.ShipmentID, reason); err != nil {
		f.Toasts.Show(api.ErrorMessage(err, "무효화 실패"), toast.Error)
		return
	}
	f.Cache.Invalidate(query.Key("shipments"), query.Key("shipment", f.ShipmentID))
	f.Toasts.Show("출고가 무효화되었습니다", toast.Success)
}

func (f *ShipmentDetail) download(ctx context.Context, sh model.Shipment) {
	name := sh.DisplayID
	if name == "" {
		name = "shipment"
	}
	path, err := f.Shipments.DownloadZip(ctx, f.DownloadDir, f.ShipmentID, name)
	if err != nil {
		f.Toasts.Show(api.ErrorMessage(err, "다운로드 URL 생성 실패"), toast.Error)
		return
	}
	f.printf("저장됨: %s", path)
}

func statusLabel(status string) string {
	switch status {
	case model.ShipmentReady:
		return "준비완료"
	case model.ShipmentShipped:
		return "출고완료"
	case model.ShipmentVoid:
		return "무효"
	}
	return status
}

func seriesName(sh model.Shipment) string {
	if sh.Series != nil {
		return sh.Series.Name
	}
	return "-"
}

func assetDinaID(sa model.ShipmentAsset) string {
	if sa.Asset != nil {
		return sa.Asset.DinaID
	}
	return "-"
}

func assetEdition(sa model.ShipmentAsset) int {
	if sa.Asset != nil {
		return sa.Asset.Edition
	}
	return 0
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

func koDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d. %02d. %02d. %02d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
