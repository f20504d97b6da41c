package recaptcha

import (
	"time"

	"github.com/samko5sam/webapps/utils/log"

	"github.com/spf13/viper"
	"github.com/ztrue/tracerr"
	"gopkg.in/ezzarghili/recaptcha-go.v4"
)

var (
	ErrReCAPTCHANotInit = tracerr.New("reCAPTCHA not init")

	instance *recaptcha.ReCAPTCHA
)

// Init init new reCAPTCHA instance from config, exit when facing any error.
func Init() {
	tmp, err := recaptcha.NewReCAPTCHA(viper.GetString("recaptcha.secret"), recaptcha.V2,
		time.Duration(viper.GetInt("recaptcha.timeout"))*time.Second)
	if err != nil {
		log.NewEntry(tracerr.Wrap(err)).Fatal("Failed to init recaptcha")
	}
	if viper.GetBool("recaptcha.cnmirror") {
		tmp.ReCAPTCHALink = "https://www.recaptcha.net/recaptcha/api/siteverify"
	}
	instance = &tmp
	log.New().WithFields(log.F{
		"link": instance.ReCAPTCHALink,
	}).Debug("ReCAPTCHA initialized")
}

// VerifyCAPTCHA verify reCAPTCHA based on response and ip.
func VerifyCAPTCHA(response string, ip string) error {
	if instance == nil {
		return ErrReCAPTCHANotInit
	}
	return tracerr.Wrap(instance.VerifyWithOptions(response, recaptcha.VerifyOption{
		RemoteIP: ip,
	}))
}
