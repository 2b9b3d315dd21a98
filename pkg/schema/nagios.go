package schema

// OS families with built-in overlays.
const (
	FamilyRedHat = "RedHat"
	FamilyDebian = "Debian"
)

var (
	dateFormats        = []string{"us", "euro", "iso8601", "strict-iso8601"}
	logRotationMethods = []string{"n", "h", "d", "w", "m"}
	checkTimeoutStates = []string{"o", "w", "c", "u"}
)

func intOpt(name string, def int64) OptionSpec {
	return OptionSpec{Name: name, Kind: KindInt, Default: def}
}

func floatOpt(name string, def float64) OptionSpec {
	return OptionSpec{Name: name, Kind: KindFloat, Default: def}
}

func strOpt(name, def string) OptionSpec {
	return OptionSpec{Name: name, Kind: KindString, Default: def}
}

func listOpt(name string, def ...string) OptionSpec {
	o := OptionSpec{Name: name, Kind: KindStringList}
	if len(def) > 0 {
		o.Default = def
	}
	return o
}

func enumOpt(name, def string, allowed []string) OptionSpec {
	return OptionSpec{Name: name, Kind: KindEnum, Default: def, Allowed: allowed}
}

func required(name string, kind Kind, allowed ...string) OptionSpec {
	return OptionSpec{Name: name, Kind: kind, Required: true, Allowed: allowed}
}

// nagiosOptions is the nagios.cfg option table. Order is render order.
var nagiosOptions = []OptionSpec{
	intOpt("accept_passive_host_checks", 1),
	intOpt("accept_passive_service_checks", 1),
	intOpt("additional_freshness_latency", 15),
	required("admin_email", KindString),
	required("admin_pager", KindString),
	intOpt("auto_reschedule_checks", 0),
	intOpt("auto_rescheduling_interval", 30),
	intOpt("auto_rescheduling_window", 180),
	intOpt("bare_update_check", 0),
	intOpt("cached_host_check_horizon", 15),
	intOpt("cached_service_check_horizon", 15),
	listOpt("cfg_dir", "/etc/nagios/conf.d"),
	intOpt("check_external_commands", 1),
	intOpt("check_for_orphaned_hosts", 1),
	intOpt("check_for_orphaned_services", 1),
	intOpt("check_for_updates", 1),
	strOpt("check_result_path", "/var/log/nagios/spool/checkresults"),
	intOpt("check_result_reaper_frequency", 10),
	intOpt("check_service_freshness", 1),
	intOpt("command_check_interval", -1),
	intOpt("deamon_dumps_core", 0),
	strOpt("debug_file", "/var/log/nagios/nagios.debug"),
	intOpt("debug_level", 0),
	intOpt("enable_embedded_perl", 1),
	intOpt("enable_environment_macros", 1),
	intOpt("enable_event_handlers", 1),
	intOpt("enable_flap_detection", 1),
	intOpt("enable_notifications", 1),
	intOpt("enable_predictive_host_dependency_checks", 1),
	intOpt("enable_predictive_service_dependency_checks", 1),
	intOpt("event_broker_options", -1),
	intOpt("event_handler_timeout", 30),
	intOpt("execute_host_checks", 1),
	intOpt("execute_service_checks", 1),
	intOpt("external_command_buffer_slots", 4096),
	floatOpt("high_host_flap_threshold", 20.0),
	floatOpt("high_service_flap_threshold", 20.0),
	intOpt("host_freshness_check_interval", 60),
	strOpt("host_inter_check_delay_method", "s"),
	strOpt("illegal_object_name_chars", "`~!$%^&*|'\"<>?,()="),
	strOpt("illegal_macro_output_chars", "`~$&|'\"<>"),
	intOpt("interval_length", 60),
	strOpt("log_archive_path", "/var/log/nagios/archives"),
	strOpt("log_file", "/var/log/nagios/nagios.log"),
	intOpt("log_initial_states", 0),
	enumOpt("log_rotation_method", "d", logRotationMethods),
	floatOpt("low_host_flap_threshold", 5.0),
	floatOpt("low_service_flap_threshold", 5.0),
	intOpt("max_check_result_file_age", 3600),
	intOpt("max_check_result_reaper_time", 30),
	intOpt("max_concurrent_checks", 0),
	intOpt("max_debug_file_size", 1000000),
	intOpt("max_host_check_spread", 30),
	intOpt("max_service_check_spread", 30),
	strOpt("nagios_group", "nagios"),
	strOpt("nagios_user", "nagios"),
	intOpt("notification_timeout", 30),
	strOpt("cache_file", "/var/cache/nagios/objects.cache"),
	intOpt("passive_host_checks_are_soft", 0),
	intOpt("perfdata_timeout", 5),
	strOpt("precached_object_file", "/var/cache/nagios/objects/precache"),
	intOpt("process_performance_data", 0),
	strOpt("resource_file", "/etc/nagios/private/resource.cfg"),
	intOpt("retain_state_information", 1),
	intOpt("retained_contact_host_attribute_mask", 0),
	intOpt("retained_contact_service_attribute_mask", 0),
	intOpt("retained_host_attribute_mask", 0),
	intOpt("retained_process_host_attribute_mask", 0),
	intOpt("retained_process_service_attribute_mask", 0),
	intOpt("retention_update_interval", 60),
	intOpt("service_check_timeout", 60),
	enumOpt("service_check_timeout_state", "c", checkTimeoutStates),
	intOpt("service_freshness_check_interval", 60),
	strOpt("service_inter_check_delay_method", "s"),
	strOpt("service_interleave_factor", "s"),
	floatOpt("sleep_time", 0.25),
	intOpt("soft_state_dependencies", 0),
	strOpt("state_retention_file", "/var/lib/nagios/retention.dat"),
	strOpt("status_file", "/var/cache/nagios/status.dat"),
	intOpt("status_update_interval", 10),
	strOpt("temp_file", "/var/cache/nagios/nagios.tmp"),
	strOpt("temp_path", "/tmp"),
	intOpt("translate_passive_host_checks", 0),
	intOpt("use_aggressive_host_checking", 0),
	intOpt("use_embedded_perl_implicitly", 1),
	intOpt("use_large_installation_tweaks", 0),
	intOpt("use_regexp_matching", 0),
	intOpt("use_retained_scheduling_info", 1),
	intOpt("use_syslog", 1),
	intOpt("use_true_regexp_matching", 0),

	// Distribution specific; supplied by NagiosOSDefaults.
	required("check_host_freshness", KindInt),
	required("command_file", KindString),
	required("date_format", KindEnum, dateFormats...),
	required("debug_verbosity", KindInt),
	required("host_check_timeout", KindInt),
	required("lock_file", KindString),
	required("log_event_handlers", KindInt),
	required("log_external_commands", KindInt),
	required("log_host_retries", KindInt),
	required("log_notifications", KindInt),
	required("log_passive_checks", KindInt),
	required("log_service_checks", KindInt),
	required("obsess_over_hosts", KindInt),
	required("obsess_over_services", KindInt),
	required("ocsp_timeout", KindInt),
	required("p1_file", KindString),
	required("use_retained_program_state", KindInt),
}

var nagiosCatalog = MustCatalog(nagiosOptions...)

// Nagios returns the built-in nagios.cfg catalog.
func Nagios() *Catalog {
	return nagiosCatalog
}

// NagiosOSDefaults returns a fresh copy of the built-in overlays for the
// RedHat and Debian families.
func NagiosOSDefaults() OSDefaults {
	return OSDefaults{
		FamilyRedHat: {
			"check_host_freshness":       int64(0),
			"command_file":               "/var/spool/nagios/cmd/nagios.cmd",
			"date_format":                "us",
			"debug_verbosity":            int64(1),
			"host_check_timeout":         int64(30),
			"lock_file":                  "/var/run/nagios/nagios.pid",
			"log_event_handlers":         int64(1),
			"log_external_commands":      int64(1),
			"log_host_retries":           int64(1),
			"log_notifications":          int64(1),
			"log_passive_checks":         int64(1),
			"log_service_checks":         int64(1),
			"obsess_over_hosts":          int64(0),
			"obsess_over_services":       int64(0),
			"ocsp_timeout":               int64(5),
			"p1_file":                    "/usr/sbin/p1.pl",
			"use_retained_program_state": int64(1),
		},
		FamilyDebian: {
			"cache_file":                 "/var/cache/nagios4/objects.cache",
			"cfg_dir":                    []string{"/etc/nagios4/conf.d", "/etc/nagios4/objects"},
			"check_host_freshness":       int64(0),
			"check_result_path":          "/var/lib/nagios4/spool/checkresults",
			"command_file":               "/var/lib/nagios4/rw/nagios.cmd",
			"date_format":                "iso8601",
			"debug_file":                 "/var/log/nagios4/nagios.debug",
			"debug_verbosity":            int64(1),
			"host_check_timeout":         int64(30),
			"lock_file":                  "/run/nagios4/nagios4.pid",
			"log_archive_path":           "/var/log/nagios4/archives",
			"log_event_handlers":         int64(1),
			"log_external_commands":      int64(1),
			"log_file":                   "/var/log/nagios4/nagios.log",
			"log_host_retries":           int64(1),
			"log_notifications":          int64(1),
			"log_passive_checks":         int64(1),
			"log_service_checks":         int64(1),
			"obsess_over_hosts":          int64(0),
			"obsess_over_services":       int64(0),
			"ocsp_timeout":               int64(5),
			"p1_file":                    "/usr/lib/nagios4/p1.pl",
			"precached_object_file":      "/var/cache/nagios4/objects.precache",
			"resource_file":              "/etc/nagios4/resource.cfg",
			"state_retention_file":       "/var/lib/nagios4/retention.dat",
			"status_file":                "/var/lib/nagios4/status.dat",
			"temp_file":                  "/var/cache/nagios4/nagios.tmp",
			"use_retained_program_state": int64(1),
		},
	}
}
